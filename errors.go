package cody

import "errors"

var (
	// ErrBufferTooSmall reports that a frame, or the bytes required to decode
	// one, cannot fit in the configured buffer capacity.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrBytesRemaining reports that the source reached end of stream while a
	// partial frame was still buffered and no further progress is possible.
	ErrBytesRemaining = errors.New("bytes remaining on stream")

	// ErrBadDecoder reports a decoder that consumed zero bytes, consumed more
	// bytes than it was given, or broke a frame size promise.
	ErrBadDecoder = errors.New("bad decoder")

	// ErrBadEncoder reports an encoder that claimed to write more bytes than
	// the region it was offered.
	ErrBadEncoder = errors.New("bad encoder")

	// ErrWriteZero reports a sink that accepted zero bytes without an error.
	ErrWriteZero = errors.New("write zero")
)

var errConsumeOutOfRange = errors.New("consume beyond filled region")
