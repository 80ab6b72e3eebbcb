package cody

import (
	"github.com/rs/zerolog"

	intlog "github.com/JadKHaddad/cody-go/internal/log"
)

// DefaultBufferSize is the frame buffer capacity used when no buffer option
// is given.
const DefaultBufferSize = 4096

type config struct {
	buf               []byte
	size              int
	eagerCompaction   bool
	decodeEmptyBuffer bool
	decoderChecks     bool
	encoderChecks     bool
	boundary          int
	logger            zerolog.Logger
	loggerSet         bool
}

// Option configures a FramedRead or FramedWrite at construction time.
type Option func(*config)

// WithBufferSize sets the frame buffer capacity in bytes.
func WithBufferSize(n int) Option {
	return func(c *config) {
		c.size = n
	}
}

// WithBuffer uses p as the frame buffer backing storage instead of allocating
// one. The buffer must not be touched by the caller afterwards.
func WithBuffer(p []byte) Option {
	return func(c *config) {
		c.buf = p
	}
}

// WithEagerCompaction compacts the buffer after every decode that leaves
// consumed bytes behind, instead of only when the writable region would
// otherwise be empty. The decoded frame sequence is identical under both
// policies; only the number of byte moves differs.
func WithEagerCompaction() Option {
	return func(c *config) {
		c.eagerCompaction = true
	}
}

// WithDecodeEmptyBuffer calls DecodeEOF even when the unconsumed view is
// already empty, permitting decoders that emit a terminal frame purely from
// end of stream.
func WithDecodeEmptyBuffer() Option {
	return func(c *config) {
		c.decodeEmptyBuffer = true
	}
}

// WithDecoderChecks validates every decoder result before it is applied to
// the buffer. Violations surface as ErrBadDecoder instead of corrupting the
// buffer offsets or stalling the loop.
func WithDecoderChecks() Option {
	return func(c *config) {
		c.decoderChecks = true
	}
}

// WithEncoderChecks validates every encoder result before it is committed to
// the buffer. Violations surface as ErrBadEncoder.
func WithEncoderChecks() Option {
	return func(c *config) {
		c.encoderChecks = true
	}
}

// WithBackpressureBoundary sets the number of buffered bytes at which
// WriteFrame flushes before encoding. Defaults to 3/4 of the buffer capacity.
func WithBackpressureBoundary(n int) Option {
	return func(c *config) {
		c.boundary = n
	}
}

// WithLogger attaches a logger to the framing loop. Without it, logging is
// controlled by the CODY_LOG environment variable.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
		c.loggerSet = true
	}
}

func newConfig(opts []Option) config {
	c := config{size: DefaultBufferSize}
	for _, opt := range opts {
		opt(&c)
	}
	if c.buf == nil {
		c.buf = make([]byte, c.size)
	}
	if c.boundary <= 0 {
		c.boundary = len(c.buf) / 4 * 3
	}
	return c
}

func (c *config) loggerFor(direction intlog.Direction) zerolog.Logger {
	if c.loggerSet {
		return c.logger
	}
	return intlog.New(direction)
}
