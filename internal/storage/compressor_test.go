package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdCompressor_RoundTrip(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	input := bytes.Repeat([]byte(`{"day":"Mon","mood":4,"date":"Dec 9"},`), 100)
	compressed, err := c.Compress(input)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(input))

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestZstdCompressor_DecompressGarbage(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Decompress([]byte("definitely not zstd"))
	assert.Error(t, err)
}

func TestNewCompressorProvider_CleanupStopsCoders(t *testing.T) {
	c, cleanup, err := NewCompressorProvider()
	require.NoError(t, err)
	require.NotNil(t, cleanup)

	compressed, err := c.Compress([]byte("mood"))
	require.NoError(t, err)
	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, []byte("mood"), out)

	cleanup()
	_, err = c.Decompress(compressed)
	assert.Error(t, err, "a closed decoder must refuse work")
}
