package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{1, true},
		{2, true},
		{3, false},
		{64, true},
		{100, false},
		{0, false},
		{-4, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPowerOfTwo(tt.n), "IsPowerOfTwo(%d)", tt.n)
	}
}

func TestCeilToPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 4},
		{16, 16},
		{100, 128},
		{1023, 1024},
		{1024, 1024},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CeilToPowerOfTwo(tt.n), "CeilToPowerOfTwo(%d)", tt.n)
	}
}
