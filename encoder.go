package cody

// Encoder serializes items into a caller-provided region.
type Encoder[T any] interface {
	// Encode writes the byte representation of item into dst and returns the
	// number of bytes written. When dst is too small it must fail with an
	// error matching ErrBufferTooSmall and leave no partial frame behind; the
	// framing loop may then flush and offer a larger region.
	Encode(item T, dst []byte) (int, error)
}
