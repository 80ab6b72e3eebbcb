package cody

// checkedDecoder wraps a Decoder and validates every result before the loop
// applies it: a frame must consume at least one byte and never more than the
// view it was given, a known frame size promise of zero is rejected, and a
// decoder that fails to produce a frame after its promised size arrived is
// rejected. At end of stream a zero-size frame is tolerated only on an empty
// view, where there is nothing left to consume.
type checkedDecoder[T any] struct {
	inner    Decoder[T]
	promised int
}

func (d *checkedDecoder[T]) Decode(src []byte) (Frame[T], int, bool, error) {
	fr, need, ok, err := d.inner.Decode(src)
	if err != nil {
		return fr, need, ok, err
	}

	if ok {
		if fr.size == 0 || fr.size > len(src) {
			return fr, 0, false, ErrBadDecoder
		}
		d.promised = 0
		return fr, need, true, nil
	}

	if d.promised > 0 && len(src) >= d.promised {
		return fr, 0, false, ErrBadDecoder
	}
	if need > 0 {
		d.promised = need
	}
	return fr, need, false, nil
}

func (d *checkedDecoder[T]) DecodeEOF(src []byte) (Frame[T], int, bool, error) {
	fr, need, ok, err := d.inner.DecodeEOF(src)
	if err != nil || !ok {
		return fr, need, ok, err
	}
	if fr.size > len(src) || (fr.size == 0 && len(src) > 0) {
		return fr, 0, false, ErrBadDecoder
	}
	return fr, need, true, nil
}

// checkedEncoder wraps an Encoder and rejects claimed sizes beyond the offered
// region before they are committed to the buffer. A zero-byte encoding is
// legitimate and passes through.
type checkedEncoder[T any] struct {
	inner Encoder[T]
}

func (e checkedEncoder[T]) Encode(item T, dst []byte) (int, error) {
	n, err := e.inner.Encode(item, dst)
	if err != nil {
		return n, err
	}
	if n < 0 || n > len(dst) {
		return 0, ErrBadEncoder
	}
	return n, nil
}
