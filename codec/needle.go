package codec

import (
	"bytes"

	cody "github.com/JadKHaddad/cody-go"
)

// Delimiter frames payloads separated by an arbitrary byte sequence. The
// decoded frame excludes the needle; consumption includes it. Bytes after the
// last needle are not emitted at end of stream and surface as
// ErrBytesRemaining.
type Delimiter struct {
	needle []byte
	seen   int
}

var _ cody.Decoder[[]byte] = (*Delimiter)(nil)

// NewDelimiter creates a Delimiter splitting frames on needle.
func NewDelimiter(needle []byte) *Delimiter {
	return &Delimiter{needle: needle}
}

// Needle returns the delimiter sequence.
func (d *Delimiter) Needle() []byte { return d.needle }

func (d *Delimiter) Decode(src []byte) (cody.Frame[[]byte], int, bool, error) {
	// Scan stops while a needle prefix could still complete on the next
	// refill.
	for d.seen+len(d.needle) <= len(src) {
		if bytes.Equal(src[d.seen:d.seen+len(d.needle)], d.needle) {
			fr := cody.NewFrame(src[:d.seen], d.seen+len(d.needle))
			d.seen = 0
			return fr, 0, true, nil
		}
		d.seen++
	}
	return cody.Frame[[]byte]{}, 0, false, nil
}

func (d *Delimiter) DecodeEOF(src []byte) (cody.Frame[[]byte], int, bool, error) {
	return d.Decode(src)
}
