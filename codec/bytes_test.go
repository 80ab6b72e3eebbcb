package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cody "github.com/JadKHaddad/cody-go"
)

func TestBytesDecode(t *testing.T) {
	b := Bytes{}

	fr, _, ok, err := b.Decode([]byte("chunk"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "chunk", string(fr.Item()))
	assert.Equal(t, 5, fr.Size())

	_, _, ok, err = b.Decode(nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBytesDecodeCapped(t *testing.T) {
	b := Bytes{Max: 3}

	fr, _, ok, err := b.Decode([]byte("chunk"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "chu", string(fr.Item()))
	assert.Equal(t, 3, fr.Size())
}

func TestBytesEncode(t *testing.T) {
	b := Bytes{}
	dst := make([]byte, 4)

	n, err := b.Encode([]byte("ab"), dst)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(dst[:n]))

	_, err = b.Encode([]byte("abcde"), dst)
	assert.ErrorIs(t, err, cody.ErrBufferTooSmall)
}
