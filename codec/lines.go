package codec

import (
	cody "github.com/JadKHaddad/cody-go"
)

// Lines frames '\n'-terminated lines. A trailing '\r' before the terminator
// is trimmed from the decoded line; encoding appends "\r\n". At end of stream
// an unterminated tail is emitted as a final line.
//
// The scan cursor resumes where the previous scan stopped, so refills never
// rescan bytes already searched.
type Lines struct {
	seen int
}

var (
	_ cody.Decoder[[]byte] = (*Lines)(nil)
	_ cody.Encoder[[]byte] = (*Lines)(nil)
)

func (l *Lines) Decode(src []byte) (cody.Frame[[]byte], int, bool, error) {
	for l.seen < len(src) {
		if src[l.seen] == '\n' {
			line := src[:l.seen]
			if l.seen > 0 && src[l.seen-1] == '\r' {
				line = line[:l.seen-1]
			}
			fr := cody.NewFrame(line, l.seen+1)
			l.seen = 0
			return fr, 0, true, nil
		}
		l.seen++
	}
	return cody.Frame[[]byte]{}, 0, false, nil
}

func (l *Lines) DecodeEOF(src []byte) (cody.Frame[[]byte], int, bool, error) {
	if fr, need, ok, err := l.Decode(src); ok || err != nil {
		return fr, need, ok, err
	}
	if len(src) == 0 {
		return cody.Frame[[]byte]{}, 0, false, nil
	}
	l.seen = 0
	return cody.NewFrame(src, len(src)), 0, true, nil
}

func (*Lines) Encode(item []byte, dst []byte) (int, error) {
	frameSize := len(item) + 2
	if len(dst) < frameSize {
		return 0, cody.ErrBufferTooSmall
	}
	copy(dst, item)
	copy(dst[len(item):frameSize], "\r\n")
	return frameSize, nil
}
