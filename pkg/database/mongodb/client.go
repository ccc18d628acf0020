package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/syncq/go-syncq/pkg/settings"
	"github.com/syncq/go-syncq/pkg/utils"
)

const (
	defaultHost            = "localhost"
	defaultPort            = 27017
	defaultDatabase        = "syncq"
	defaultTimeout         = 10 // seconds
	defaultMaxPoolSize     = 100
	defaultMinPoolSize     = 10
	defaultMaxConnIdleTime = 300 // seconds
)

// MongoEngine wraps a mongo client bound to a single database.
type MongoEngine struct {
	client *mongo.Client
	config *settings.MongoDB
}

// connect initializes the MongoDB client
func (m *MongoEngine) connect() error {
	m.setDefaultConfig()

	opts := options.Client().
		ApplyURI(m.buildURI()).
		SetMaxPoolSize(m.config.MaxPoolSize).
		SetMinPoolSize(m.config.MinPoolSize).
		SetMaxConnIdleTime(utils.ToDuration(int(m.config.MaxConnIdleTime)))

	ctx, cancel := context.WithTimeout(context.Background(), utils.ToDuration(m.config.Timeout))
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrPingFailed, err)
	}

	m.client = client
	return nil
}

// buildURI assembles the connection string, with credentials when configured
func (m *MongoEngine) buildURI() string {
	if m.config.Username != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%d", m.config.Username, m.config.Password, m.config.Host, m.config.Port)
	}
	return fmt.Sprintf("mongodb://%s:%d", m.config.Host, m.config.Port)
}

// setDefaultConfig sets default values for MongoDB configuration
func (m *MongoEngine) setDefaultConfig() {
	if m.config.Host == "" {
		m.config.Host = defaultHost
	}
	if m.config.Port == 0 {
		m.config.Port = defaultPort
	}
	if m.config.Database == "" {
		m.config.Database = defaultDatabase
	}
	if m.config.Timeout == 0 {
		m.config.Timeout = defaultTimeout
	}
	if m.config.MaxPoolSize == 0 {
		m.config.MaxPoolSize = defaultMaxPoolSize
	}
	if m.config.MinPoolSize == 0 {
		m.config.MinPoolSize = defaultMinPoolSize
	}
	if m.config.MaxConnIdleTime == 0 {
		m.config.MaxConnIdleTime = defaultMaxConnIdleTime
	}
}

// Database returns the configured database handle
func (m *MongoEngine) Database() *mongo.Database {
	return m.client.Database(m.config.Database)
}

// Collection returns a collection handle in the configured database
func (m *MongoEngine) Collection(name string) *mongo.Collection {
	return m.Database().Collection(name)
}

// Ping verifies the connection is alive
func (m *MongoEngine) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrPingFailed, err)
	}
	return nil
}

// Close disconnects the underlying client
func (m *MongoEngine) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Client returns the underlying mongo client (Escape hatch)
func (m *MongoEngine) Client() *mongo.Client {
	return m.client
}
