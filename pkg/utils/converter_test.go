package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToBytes(t *testing.T) {
	b := StringToBytes("hello")

	assert.Equal(t, []byte("hello"), b)
	assert.Len(t, b, 5)
}

func TestStringToBytes_Empty(t *testing.T) {
	assert.Empty(t, StringToBytes(""))
}

func TestBytesToString(t *testing.T) {
	s := BytesToString([]byte("hello"))

	assert.Equal(t, "hello", s)
}

func TestBytesToString_Empty(t *testing.T) {
	assert.Equal(t, "", BytesToString(nil))
}

func TestStringToBytes_RoundTrip(t *testing.T) {
	original := "payload with unicode: héllo"

	assert.Equal(t, original, BytesToString(StringToBytes(original)))
}
