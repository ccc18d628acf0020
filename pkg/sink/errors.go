package sink

import "errors"

var (
	ErrConnectFailed  = errors.New("failed to connect sink")
	ErrEncodeFailed   = errors.New("failed to encode item")
	ErrDeliveryFailed = errors.New("failed to deliver batch")
)
