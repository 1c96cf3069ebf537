package secret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromBytes_ZeroesSource(t *testing.T) {
	source := []byte("hunter2")

	buf, err := NewFromBytes(source)
	require.NoError(t, err)
	defer buf.Close()

	assert.Equal(t, "hunter2", buf.String())
	assert.Equal(t, 7, buf.Len())
	assert.Equal(t, make([]byte, 7), source, "source must be zeroed")
}

func TestNewFromBytes_Empty(t *testing.T) {
	buf, err := NewFromBytes(nil)

	assert.ErrorIs(t, err, ErrEmpty)
	assert.Nil(t, buf)
}

func TestClose_Idempotent(t *testing.T) {
	buf, err := NewFromBytes([]byte("pw"))
	require.NoError(t, err)

	require.NoError(t, buf.Close())
	require.NoError(t, buf.Close())
	assert.True(t, buf.Closed())
	assert.Equal(t, 0, buf.Len())
}

func TestReadAfterClose_Panics(t *testing.T) {
	buf, err := NewFromBytes([]byte("pw"))
	require.NoError(t, err)
	require.NoError(t, buf.Close())

	assert.Panics(t, func() { _ = buf.String() })
	assert.Panics(t, func() { _ = buf.Bytes() })
}
