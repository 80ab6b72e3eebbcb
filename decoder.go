package cody

// Frame is one decoded item together with the number of bytes its decode
// consumed from the unconsumed view.
type Frame[T any] struct {
	item T
	size int
}

// NewFrame creates a Frame. size is the number of bytes consumed from the
// view the decoder was given. It must be greater than zero and never more
// than the view length; the bytes backing item may be fewer, never more.
func NewFrame[T any](item T, size int) Frame[T] {
	return Frame[T]{item: item, size: size}
}

// Item returns the decoded item.
func (f Frame[T]) Item() T { return f.item }

// Size returns the number of bytes consumed from the view.
func (f Frame[T]) Size() int { return f.size }

// Decoder extracts frames from buffered bytes.
//
// The framing loop guarantees:
//   - after Decode returns ok=false with need=0, the next Decode call sees a
//     strictly larger view (DecodeEOF may see the same view when empty-buffer
//     draining is enabled),
//   - after Decode returns ok=false with need>0, the next call sees a view of
//     at least need bytes, or the stream fails with ErrBytesRemaining or
//     ErrBufferTooSmall before the decoder is called again.
//
// An item may alias the view it was decoded from. Such an item is valid until
// the next call into the owning FramedRead; callers that need it longer must
// copy it out first.
type Decoder[T any] interface {
	// Decode inspects the unconsumed view and returns a decoded frame with
	// ok=true, or ok=false when src does not yet hold a complete frame. In
	// the latter case need is the total byte size of the pending frame when
	// the decoder already knows it, and zero when it does not. An error is
	// fatal to the stream.
	Decode(src []byte) (fr Frame[T], need int, ok bool, err error)

	// DecodeEOF drains final frames once the source is exhausted. It is
	// called repeatedly until it returns ok=false; need is ignored at end of
	// stream. Unconsumed bytes left after that surface as ErrBytesRemaining.
	DecodeEOF(src []byte) (fr Frame[T], need int, ok bool, err error)
}
