package codec

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cody "github.com/JadKHaddad/cody-go"
)

func frame(payload string) []byte {
	out := make([]byte, 4+len(payload))
	binary.BigEndian.PutUint32(out, uint32(4+len(payload)))
	copy(out[4:], payload)
	return out
}

func TestLengthDelimitedDecode(t *testing.T) {
	c := LengthDelimited{}

	fr, need, ok, err := c.Decode(frame("hello"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, need)
	assert.Equal(t, "hello", string(fr.Item()))
	assert.Equal(t, 9, fr.Size())
}

func TestLengthDelimitedDecodeIncomplete(t *testing.T) {
	c := LengthDelimited{}

	_, need, ok, err := c.Decode([]byte{0x00, 0x00})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, need)

	_, need, ok, err = c.Decode(frame("hello")[:6])
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 9, need)
}

func TestLengthDelimitedDecodeInvalidLength(t *testing.T) {
	c := LengthDelimited{}
	_, _, _, err := c.Decode([]byte{0x00, 0x00, 0x00, 0x03, 'x'})
	assert.ErrorIs(t, err, ErrInvalidFrameSize)
}

func TestLengthDelimitedEncode(t *testing.T) {
	c := LengthDelimited{}
	dst := make([]byte, 16)

	n, err := c.Encode([]byte("hi"), dst)
	require.NoError(t, err)
	assert.Equal(t, frame("hi"), dst[:n])

	_, err = c.Encode([]byte("too long for this"), dst)
	assert.ErrorIs(t, err, cody.ErrBufferTooSmall)
}

func TestLengthDelimitedRoundTrip(t *testing.T) {
	var sink bytes.Buffer
	writer := cody.NewFramedWrite[[]byte](&sink, LengthDelimited{})
	payloads := []string{"one", "", "three", "fourfourfour"}
	for _, p := range payloads {
		require.NoError(t, writer.WriteFrame([]byte(p)))
	}
	require.NoError(t, writer.Flush())

	reader := cody.NewFramedRead[[]byte](&sink, LengthDelimited{}, cody.WithDecoderChecks())
	for _, want := range payloads {
		got, err := reader.ReadFrame()
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
	_, err := reader.ReadFrame()
	assert.ErrorIs(t, err, io.EOF)
}
