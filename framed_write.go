package cody

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	intlog "github.com/JadKHaddad/cody-go/internal/log"
)

// FramedWrite turns a sequence of items into bytes written to an io.Writer.
//
// Items are encoded into a fixed-capacity frame buffer and flushed to the
// sink in submission order. Partial writes are retried until the buffer is
// drained; they are expected sink behavior, not errors.
//
// A FramedWrite is not safe for concurrent use. After any error, every
// further call returns the same error.
type FramedWrite[T any] struct {
	buf      frameBuffer
	encoder  Encoder[T]
	inner    io.Writer
	logger   zerolog.Logger
	boundary int
	err      error
}

// NewFramedWrite creates a FramedWrite encoding frames to inner with encoder.
func NewFramedWrite[T any](inner io.Writer, encoder Encoder[T], opts ...Option) *FramedWrite[T] {
	cfg := newConfig(opts)
	if cfg.encoderChecks {
		encoder = checkedEncoder[T]{inner: encoder}
	}
	return &FramedWrite[T]{
		buf:      newFrameBuffer(cfg.buf),
		encoder:  encoder,
		inner:    inner,
		logger:   cfg.loggerFor(intlog.DirectionWrite),
		boundary: cfg.boundary,
	}
}

// Buffered returns the number of encoded bytes not yet flushed.
func (w *FramedWrite[T]) Buffered() int { return w.buf.filled - w.buf.consumed }

// Capacity returns the fixed buffer capacity.
func (w *FramedWrite[T]) Capacity() int { return len(w.buf.data) }

func (w *FramedWrite[T]) fail(err error) error {
	w.err = err
	return err
}

// WriteFrame encodes item into the buffer, flushing first when the buffered
// bytes crossed the backpressure boundary or when the encoder needs more room
// than the buffer tail offers. The frame may remain buffered until the next
// flush; call Flush or Close to force it out.
func (w *FramedWrite[T]) WriteFrame(item T) error {
	if w.err != nil {
		return w.err
	}

	if w.buf.filled >= w.boundary {
		w.logger.Debug().Int("buffered", w.Buffered()).Int("boundary", w.boundary).Msg("backpressure")
		if err := w.Flush(); err != nil {
			return err
		}
	}

	n, err := w.encoder.Encode(item, w.buf.writable())
	if err != nil && errors.Is(err, ErrBufferTooSmall) && w.buf.filled > 0 {
		// The frame may still fit in a drained buffer.
		if ferr := w.Flush(); ferr != nil {
			return ferr
		}
		n, err = w.encoder.Encode(item, w.buf.writable())
	}
	if err != nil {
		if errors.Is(err, ErrBadEncoder) || errors.Is(err, ErrBufferTooSmall) {
			return w.fail(err)
		}
		return w.fail(fmt.Errorf("encode: %w", err))
	}

	if cerr := w.buf.commit(n); cerr != nil {
		return w.fail(ErrBadEncoder)
	}
	w.logger.Debug().Int("bytes", n).Int("buffered", w.Buffered()).Msg("frame encoded")
	return nil
}

// Flush writes all buffered bytes to the sink, retrying partial writes, then
// resets the buffer. A sink accepting zero bytes without error fails with
// ErrWriteZero.
func (w *FramedWrite[T]) Flush() error {
	if w.err != nil {
		return w.err
	}

	for {
		pending := w.buf.unconsumed()
		if len(pending) == 0 {
			break
		}

		n, werr := w.inner.Write(pending)
		if n > 0 {
			if cerr := w.buf.consume(n); cerr != nil {
				return w.fail(fmt.Errorf("write: sink accepted %d of %d pending bytes", n, len(pending)))
			}
			w.logger.Debug().Int("bytes", n).Int("pending", w.Buffered()).Msg("wrote")
		}
		if werr != nil {
			return w.fail(fmt.Errorf("write: %w", werr))
		}
		if n == 0 {
			return w.fail(ErrWriteZero)
		}
	}

	w.buf.reset()
	if f, ok := w.inner.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return w.fail(fmt.Errorf("flush: %w", err))
		}
	}
	w.logger.Debug().Msg("flushed")
	return nil
}

// Close flushes buffered bytes and closes the sink when it is an io.Closer.
func (w *FramedWrite[T]) Close() error {
	err := w.Flush()
	if c, ok := w.inner.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}
	return err
}
