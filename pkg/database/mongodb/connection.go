package mongodb

import (
	"fmt"

	"github.com/syncq/go-syncq/pkg/settings"
)

// NewConnection creates and returns a new MongoDB client
func NewConnection(cfg *settings.MongoDB) (*MongoEngine, error) {
	engine := &MongoEngine{
		config: cfg,
	}

	if err := engine.connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	return engine, nil
}
