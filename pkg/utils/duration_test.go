package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    time.Duration
	}{
		{0, 0},
		{1, time.Second},
		{30, 30 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToDuration(tt.seconds), "ToDuration(%d)", tt.seconds)
	}
}

func TestToDurationMs(t *testing.T) {
	tests := []struct {
		ms   int
		want time.Duration
	}{
		{0, 0},
		{300, 300 * time.Millisecond},
		{1500, 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToDurationMs(tt.ms), "ToDurationMs(%d)", tt.ms)
	}
}
