package pump

import "errors"

var (
	ErrNilSource = errors.New("source must not be nil")
	ErrNilSink   = errors.New("sink must not be nil")
)
