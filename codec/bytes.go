package codec

import (
	cody "github.com/JadKHaddad/cody-go"
)

// Bytes passes chunks through as they arrive. Max, when positive, caps the
// number of bytes emitted per frame.
type Bytes struct {
	Max int
}

var (
	_ cody.Decoder[[]byte] = Bytes{}
	_ cody.Encoder[[]byte] = Bytes{}
)

func (b Bytes) Decode(src []byte) (cody.Frame[[]byte], int, bool, error) {
	n := len(src)
	if n == 0 {
		return cody.Frame[[]byte]{}, 0, false, nil
	}
	if b.Max > 0 && n > b.Max {
		n = b.Max
	}
	return cody.NewFrame(src[:n], n), 0, true, nil
}

func (b Bytes) DecodeEOF(src []byte) (cody.Frame[[]byte], int, bool, error) {
	return b.Decode(src)
}

func (Bytes) Encode(item []byte, dst []byte) (int, error) {
	if len(dst) < len(item) {
		return 0, cody.ErrBufferTooSmall
	}
	return copy(dst, item), nil
}
