package elasticsearch

import (
	"fmt"
	"net/http"

	elasticV8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/syncq/go-syncq/pkg/settings"
)

// Client adapts the official Elasticsearch client to the ElasticClient
// contract. The official client exposes API calls as function fields, which
// cannot satisfy an interface directly.
type Client struct {
	es *elasticV8.Client
}

var _ ElasticClient = (*Client)(nil)

// New creates a client from settings and verifies connectivity
func New(cfg settings.Elasticsearch) (*Client, error) {
	es, err := elasticV8.NewClient(elasticV8.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	client := &Client{es: es}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPingFailed, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrPingFailed, res.Status())
	}

	return client, nil
}

// Info reports cluster information
func (c *Client) Info(o ...func(*esapi.InfoRequest)) (*esapi.Response, error) {
	return c.es.Info(o...)
}

// Perform executes a raw request, satisfying esapi.Transport so esapi
// request objects can run through this client
func (c *Client) Perform(req *http.Request) (*http.Response, error) {
	return c.es.Perform(req)
}
