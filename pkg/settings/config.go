package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Queue         Queue         `mapstructure:"queue"`
	Pump          Pump          `mapstructure:"pump"`
	Logger        Logger        `mapstructure:"logger"`
	Redis         Redis         `mapstructure:"redis"`
	Kafka         Kafka         `mapstructure:"kafka"`
	MongoDB       MongoDB       `mapstructure:"mongodb"`
	Elasticsearch Elasticsearch `mapstructure:"elasticsearch"`
	Monitoring    Monitoring    `mapstructure:"monitoring"`
}

// Queue is the configuration for the in-process queue
type Queue struct {
	Capacity int `mapstructure:"capacity" envconfig:"QUEUE_CAPACITY" default:"1024" validate:"min=0"` // 0 = unbounded
}

// Pump is the configuration for the queue pump
type Pump struct {
	Workers       int  `mapstructure:"workers" envconfig:"PUMP_WORKERS" default:"4" validate:"min=1"`
	BatchSize     int  `mapstructure:"batch_size" envconfig:"PUMP_BATCH_SIZE" default:"64" validate:"min=1"`
	FlushInterval int  `mapstructure:"flush_interval" envconfig:"PUMP_FLUSH_INTERVAL" default:"200" validate:"min=1"` // Milliseconds
	RateLimit     int  `mapstructure:"rate_limit" envconfig:"PUMP_RATE_LIMIT" default:"0" validate:"min=0"`           // Items per second, 0 = unlimited
	Burst         int  `mapstructure:"burst" envconfig:"PUMP_BURST" default:"0" validate:"min=0"`
	StopOnError   bool `mapstructure:"stop_on_error" envconfig:"PUMP_STOP_ON_ERROR" default:"false"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name" envconfig:"LOG_FILE_NAME"`
	MaxBackups  int    `mapstructure:"max_backups" envconfig:"LOG_MAX_BACKUPS" default:"3"`
	MaxAge      int    `mapstructure:"max_age" envconfig:"LOG_MAX_AGE" default:"28"`    // Days
	MaxSize     int    `mapstructure:"max_size" envconfig:"LOG_MAX_SIZE" default:"100"` // Megabytes
	Compress    bool   `mapstructure:"compress" envconfig:"LOG_COMPRESS" default:"true"`
	Development bool   `mapstructure:"development" envconfig:"LOG_DEV" default:"false"`
}

// Redis is the configuration for Redis
type Redis struct {
	Addrs           []string `mapstructure:"addrs" envconfig:"REDIS_ADDRS" default:"localhost:6379"`
	MasterName      string   `mapstructure:"master_name" envconfig:"REDIS_MASTER_NAME"`
	Password        string   `mapstructure:"password" envconfig:"REDIS_PASSWORD"`
	Database        int      `mapstructure:"database" envconfig:"REDIS_DATABASE" default:"0"`
	PoolSize        int      `mapstructure:"pool_size" envconfig:"REDIS_POOL_SIZE" default:"10"`
	MinIdleConns    int      `mapstructure:"min_idle_conns" envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	PoolTimeout     int      `mapstructure:"pool_timeout" envconfig:"REDIS_POOL_TIMEOUT" default:"30"`
	DialTimeout     int      `mapstructure:"dial_timeout" envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout     int      `mapstructure:"read_timeout" envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout    int      `mapstructure:"write_timeout" envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	MaxRetries      int      `mapstructure:"max_retries" envconfig:"REDIS_MAX_RETRIES" default:"3"`
	MaxRetryBackoff int      `mapstructure:"max_retry_backoff" envconfig:"REDIS_MAX_RETRY_BACKOFF" default:"512"`
	MinRetryBackoff int      `mapstructure:"min_retry_backoff" envconfig:"REDIS_MIN_RETRY_BACKOFF" default:"8"`
}

// Kafka is the configuration for Kafka
type Kafka struct {
	Brokers           []string `mapstructure:"brokers" envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic             string   `mapstructure:"topic" envconfig:"KAFKA_TOPIC" default:"queue.items"`
	FlushFrequency    int      `mapstructure:"flush_frequency" envconfig:"KAFKA_FLUSH_FREQUENCY" default:"100"`         // Milliseconds
	FlushBytes        int      `mapstructure:"flush_bytes" envconfig:"KAFKA_FLUSH_BYTES" default:"1048576"`             // Bytes
	MaxMessageBytes   int      `mapstructure:"max_message_bytes" envconfig:"KAFKA_MAX_MESSAGE_BYTES" default:"1000000"` // Bytes
	Timeout           int      `mapstructure:"timeout" envconfig:"KAFKA_TIMEOUT" default:"10"`                          // Seconds
	MaxRetries        int      `mapstructure:"max_retries" envconfig:"KAFKA_MAX_RETRIES" default:"3"`                   // Number of retries
	RetryBackoff      int      `mapstructure:"retry_backoff" envconfig:"KAFKA_RETRY_BACKOFF" default:"100"`             // Milliseconds
	MaxProcessingTime int      `mapstructure:"max_processing_time" envconfig:"KAFKA_MAX_PROCESSING_TIME" default:"100"` // Milliseconds
}

// MongoDB is the configuration for MongoDB
type MongoDB struct {
	Host            string `mapstructure:"host" envconfig:"MONGODB_HOST" default:"localhost"`
	Username        string `mapstructure:"username" envconfig:"MONGODB_USERNAME"`
	Password        string `mapstructure:"password" envconfig:"MONGODB_PASSWORD"`
	Database        string `mapstructure:"database" envconfig:"MONGODB_DATABASE" default:"syncq"`
	Collection      string `mapstructure:"collection" envconfig:"MONGODB_COLLECTION" default:"items"`
	MaxPoolSize     uint64 `mapstructure:"max_pool_size" envconfig:"MONGODB_MAX_POOL_SIZE" default:"100"`
	MinPoolSize     uint64 `mapstructure:"min_pool_size" envconfig:"MONGODB_MIN_POOL_SIZE" default:"10"`
	MaxConnIdleTime uint64 `mapstructure:"max_conn_idle_time" envconfig:"MONGODB_MAX_CONN_IDLE_TIME" default:"300"` // Seconds
	Port            int    `mapstructure:"port" envconfig:"MONGODB_PORT" default:"27017"`
	Timeout         int    `mapstructure:"timeout" envconfig:"MONGODB_TIMEOUT" default:"10"`                        // Seconds
}

// Elasticsearch is the configuration for Elasticsearch
type Elasticsearch struct {
	Addresses []string `mapstructure:"addresses" envconfig:"ELASTICSEARCH_ADDRESSES" default:"http://localhost:9200"`
	Username  string   `mapstructure:"username" envconfig:"ELASTICSEARCH_USERNAME"`
	Password  string   `mapstructure:"password" envconfig:"ELASTICSEARCH_PASSWORD"`
	Index     string   `mapstructure:"index" envconfig:"ELASTICSEARCH_INDEX" default:"items"`
}

// Monitoring is the configuration for metrics exposition
type Monitoring struct {
	Namespace string `mapstructure:"namespace" envconfig:"MONITORING_NAMESPACE" default:"syncq"`
}

var validate = validator.New()

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate checks the configuration against its declared constraints.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Queue: Queue{
			Capacity: 1024,
		},
		Pump: Pump{
			Workers:       4,
			BatchSize:     64,
			FlushInterval: 200,
			RateLimit:     0,
			Burst:         0,
			StopOnError:   false,
		},
		Logger: Logger{
			LogLevel:   "info",
			MaxBackups: 3,
			MaxAge:     28,
			MaxSize:    100,
			Compress:   true,
		},
		Redis: Redis{
			Addrs:           []string{"localhost:6379"},
			Database:        0,
			PoolSize:        10,
			MinIdleConns:    2,
			PoolTimeout:     30,
			DialTimeout:     5,
			ReadTimeout:     3,
			WriteTimeout:    3,
			MaxRetries:      3,
			MaxRetryBackoff: 512,
			MinRetryBackoff: 8,
		},
		Kafka: Kafka{
			Brokers:           []string{"localhost:9092"},
			Topic:             "queue.items",
			FlushFrequency:    100,
			FlushBytes:        1048576,
			MaxMessageBytes:   1000000,
			Timeout:           10,
			MaxRetries:        3,
			RetryBackoff:      100,
			MaxProcessingTime: 100,
		},
		MongoDB: MongoDB{
			Host:            "localhost",
			Database:        "syncq",
			Collection:      "items",
			MaxPoolSize:     100,
			MinPoolSize:     10,
			MaxConnIdleTime: 300,
			Port:            27017,
			Timeout:         10,
		},
		Elasticsearch: Elasticsearch{
			Addresses: []string{"http://localhost:9200"},
			Index:     "items",
		},
		Monitoring: Monitoring{
			Namespace: "syncq",
		},
	}
}
