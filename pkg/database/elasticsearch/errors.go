package elasticsearch

import "errors"

var (
	ErrConnectionFailed = errors.New("failed to connect to elasticsearch")
	ErrPingFailed       = errors.New("failed to ping elasticsearch")
)
