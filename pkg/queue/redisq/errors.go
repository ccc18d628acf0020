package redisq

import "errors"

var (
	ErrCommandFailed = errors.New("redis command failed")
	ErrEncodeFailed  = errors.New("failed to encode item")
	ErrDecodeFailed  = errors.New("failed to decode item")
)
