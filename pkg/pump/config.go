package pump

import (
	"time"

	"github.com/syncq/go-syncq/pkg/logger"
	"github.com/syncq/go-syncq/pkg/settings"
	"github.com/syncq/go-syncq/pkg/utils"
)

const (
	defaultWorkers       = 4
	defaultBatchSize     = 64
	defaultFlushInterval = 200 * time.Millisecond
)

// Config holds the pump tuning knobs.
type Config struct {
	Workers       int            // number of draining workers
	BatchSize     int            // max items per sink delivery
	FlushInterval time.Duration  // max time a partial batch is held
	RateLimit     int            // delivered items per second, 0 = unlimited
	Burst         int            // token bucket burst, raised to BatchSize if lower
	StopOnError   bool           // abort all workers on the first sink error
	Logger        *logger.Logger // nil falls back to a no-op logger
}

// FromSettings converts the settings block into a pump Config.
func FromSettings(config settings.Pump, log *logger.Logger) Config {
	return Config{
		Workers:       config.Workers,
		BatchSize:     config.BatchSize,
		FlushInterval: utils.ToDurationMs(config.FlushInterval),
		RateLimit:     config.RateLimit,
		Burst:         config.Burst,
		StopOnError:   config.StopOnError,
		Logger:        log,
	}
}
