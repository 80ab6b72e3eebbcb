package cody

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/rs/zerolog"

	intlog "github.com/JadKHaddad/cody-go/internal/log"
)

// FramedRead turns the byte stream of an io.Reader into a sequence of frames.
//
// It owns a fixed-capacity frame buffer and a Decoder and drives repeated
// "read more, decode" cycles: bytes are read into the buffer's writable
// region, then the decoder is invoked against the unconsumed view until it
// needs more bytes, at which point the loop reads again. A read of zero bytes
// (or io.EOF) starts the draining phase, in which DecodeEOF extracts any
// final frames before the stream terminates with io.EOF.
//
// A FramedRead is not safe for concurrent use; give each logical stream its
// own instance. After any error, including io.EOF, every further call returns
// the same error.
type FramedRead[T any] struct {
	buf     frameBuffer
	decoder Decoder[T]
	inner   io.Reader
	logger  zerolog.Logger

	eagerCompaction   bool
	decodeEmptyBuffer bool

	eof       bool
	framable  bool
	shift     bool
	frameSize int
	err       error
}

// NewFramedRead creates a FramedRead decoding frames from inner with decoder.
func NewFramedRead[T any](inner io.Reader, decoder Decoder[T], opts ...Option) *FramedRead[T] {
	cfg := newConfig(opts)
	if cfg.decoderChecks {
		decoder = &checkedDecoder[T]{inner: decoder}
	}
	return &FramedRead[T]{
		buf:               newFrameBuffer(cfg.buf),
		decoder:           decoder,
		inner:             inner,
		logger:            cfg.loggerFor(intlog.DirectionRead),
		eagerCompaction:   cfg.eagerCompaction,
		decodeEmptyBuffer: cfg.decodeEmptyBuffer,
	}
}

// Buffered returns the number of unconsumed bytes currently held.
func (r *FramedRead[T]) Buffered() int { return r.buf.filled - r.buf.consumed }

// Capacity returns the fixed buffer capacity.
func (r *FramedRead[T]) Capacity() int { return len(r.buf.data) }

func (r *FramedRead[T]) fail(err error) (T, error) {
	var zero T
	r.err = err
	return zero, err
}

// ReadFrame returns the next frame.
//
// It decodes greedily: all frames already buffered are yielded before the
// reader is touched again. The end of the stream is reported as io.EOF after
// any final frames have been drained. A frame's item may alias the internal
// buffer; it is valid until the next call into this FramedRead.
func (r *FramedRead[T]) ReadFrame() (T, error) {
	var zero T
	if r.err != nil {
		return zero, r.err
	}

	for {
		if r.shift {
			copied := r.buf.compact()
			r.shift = false
			r.logger.Debug().Int("copied", copied).Msg("buffer shifted")
		}

		if r.framable {
			if r.eof {
				if !r.decodeEmptyBuffer && r.buf.empty() {
					return r.fail(io.EOF)
				}
				return r.drainFrame()
			}

			fr, need, ok, err := r.decoder.Decode(r.buf.unconsumed())
			if err != nil {
				if errors.Is(err, ErrBadDecoder) {
					return r.fail(err)
				}
				return r.fail(fmt.Errorf("decode: %w", err))
			}

			if ok {
				if cerr := r.buf.consume(fr.size); cerr != nil {
					return r.fail(ErrBadDecoder)
				}
				r.frameSize = 0
				r.logger.Debug().Int("consumed", fr.size).Int("buffered", r.Buffered()).Msg("frame decoded")

				switch {
				case !r.decodeEmptyBuffer && r.buf.empty():
					// Avoid framing an empty buffer.
					r.buf.reset()
					r.framable = false
				case r.eagerCompaction && r.buf.consumed > 0:
					// Deferred so the returned item stays valid.
					r.shift = true
				}
				return fr.item, nil
			}

			if need > 0 {
				if need > len(r.buf.data) {
					r.logger.Warn().Int("need", need).Int("capacity", len(r.buf.data)).Msg("frame too large")
					return r.fail(ErrBufferTooSmall)
				}
				// Make room when the promised frame cannot fit in the tail.
				if len(r.buf.data)-r.buf.consumed < need {
					copied := r.buf.compact()
					r.logger.Debug().Int("copied", copied).Msg("buffer shifted")
				}
				r.frameSize = need
			} else if r.eagerCompaction {
				r.shift = r.buf.consumed > 0
			} else {
				r.shift = r.buf.full() && r.buf.consumed > 0
			}
			r.framable = false
			continue
		}

		if r.buf.full() {
			// Full, nothing decodable, nowhere to read into.
			return r.fail(ErrBufferTooSmall)
		}

		n, rerr := r.inner.Read(r.buf.writable())
		if n > 0 {
			if cerr := r.buf.commit(n); cerr != nil {
				return r.fail(fmt.Errorf("read: %w", cerr))
			}
			r.logger.Debug().Int("bytes", n).Msg("bytes read")
			// A promised frame size suppresses decoding until it arrives.
			if r.frameSize == 0 || r.Buffered() >= r.frameSize {
				r.frameSize = 0
				r.framable = true
			}
		}

		switch {
		case errors.Is(rerr, io.EOF), rerr == nil && n == 0:
			r.logger.Debug().Msg("eof")
			r.eof = true
			if r.frameSize > 0 {
				return r.fail(ErrBytesRemaining)
			}
			if !r.decodeEmptyBuffer && r.buf.empty() {
				return r.fail(io.EOF)
			}
			r.framable = true
		case rerr != nil:
			return r.fail(fmt.Errorf("read: %w", rerr))
		}
	}
}

// drainFrame runs one DecodeEOF step of the draining phase.
func (r *FramedRead[T]) drainFrame() (T, error) {
	fr, _, ok, err := r.decoder.DecodeEOF(r.buf.unconsumed())
	if err != nil {
		if errors.Is(err, ErrBadDecoder) {
			return r.fail(err)
		}
		return r.fail(fmt.Errorf("decode: %w", err))
	}
	if ok {
		if cerr := r.buf.consume(fr.size); cerr != nil {
			return r.fail(ErrBadDecoder)
		}
		r.logger.Debug().Int("consumed", fr.size).Int("buffered", r.Buffered()).Msg("frame decoded at eof")
		return fr.item, nil
	}
	r.framable = false
	if !r.buf.empty() {
		return r.fail(ErrBytesRemaining)
	}
	return r.fail(io.EOF)
}

// Frames returns the remaining frames as a lazy sequence. Iteration stops
// after the first error; a clean end of stream yields no error.
func (r *FramedRead[T]) Frames() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			item, err := r.ReadFrame()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(item, err)
				}
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}
