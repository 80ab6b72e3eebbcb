package cody

// frameBuffer is a fixed-capacity byte buffer tracking a filled region and a
// consumed offset. Invariant: 0 <= consumed <= filled <= cap. It is owned by
// exactly one FramedRead or FramedWrite and never shared.
type frameBuffer struct {
	data     []byte
	filled   int
	consumed int
}

func newFrameBuffer(data []byte) frameBuffer {
	return frameBuffer{data: data}
}

// writable is the region [filled, cap) new bytes are read or encoded into.
func (b *frameBuffer) writable() []byte {
	return b.data[b.filled:]
}

// commit grows the filled region after n bytes were written into writable.
func (b *frameBuffer) commit(n int) error {
	if n < 0 || b.filled+n > len(b.data) {
		return ErrBufferTooSmall
	}
	b.filled += n
	return nil
}

// unconsumed is the region [consumed, filled). No bytes are copied.
func (b *frameBuffer) unconsumed() []byte {
	return b.data[b.consumed:b.filled]
}

func (b *frameBuffer) consume(n int) error {
	if n < 0 || b.consumed+n > b.filled {
		return errConsumeOutOfRange
	}
	b.consumed += n
	return nil
}

// compact moves the unconsumed region to the start of the buffer. This is the
// only operation that moves bytes; it invalidates outstanding views.
func (b *frameBuffer) compact() int {
	n := copy(b.data, b.data[b.consumed:b.filled])
	b.filled = n
	b.consumed = 0
	return n
}

func (b *frameBuffer) reset() {
	b.filled = 0
	b.consumed = 0
}

func (b *frameBuffer) full() bool {
	return b.filled == len(b.data)
}

func (b *frameBuffer) empty() bool {
	return b.consumed == b.filled
}
