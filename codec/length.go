// Package codec provides ready-made framing codecs layered on the core
// decode/encode contracts. Decoded items are sub-slices of the frame buffer
// and stay valid until the next call into the owning FramedRead.
package codec

import (
	"encoding/binary"
	"errors"

	cody "github.com/JadKHaddad/cody-go"
)

// ErrInvalidFrameSize reports a length field smaller than the length field
// itself.
var ErrInvalidFrameSize = errors.New("invalid frame size")

// LengthDelimited frames payloads with a 4-byte big-endian length field that
// counts the entire frame, length field included.
type LengthDelimited struct{}

var (
	_ cody.Decoder[[]byte] = LengthDelimited{}
	_ cody.Encoder[[]byte] = LengthDelimited{}
)

func (LengthDelimited) Decode(src []byte) (cody.Frame[[]byte], int, bool, error) {
	if len(src) < 4 {
		return cody.Frame[[]byte]{}, 0, false, nil
	}

	frameSize := int(binary.BigEndian.Uint32(src[:4]))
	if frameSize < 4 {
		return cody.Frame[[]byte]{}, 0, false, ErrInvalidFrameSize
	}
	if len(src) < frameSize {
		return cody.Frame[[]byte]{}, frameSize, false, nil
	}
	return cody.NewFrame(src[4:frameSize], frameSize), 0, true, nil
}

func (c LengthDelimited) DecodeEOF(src []byte) (cody.Frame[[]byte], int, bool, error) {
	return c.Decode(src)
}

func (LengthDelimited) Encode(item []byte, dst []byte) (int, error) {
	frameSize := len(item) + 4
	if len(dst) < frameSize {
		return 0, cody.ErrBufferTooSmall
	}
	binary.BigEndian.PutUint32(dst[:4], uint32(frameSize))
	copy(dst[4:frameSize], item)
	return frameSize, nil
}
