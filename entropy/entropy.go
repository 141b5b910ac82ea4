// Package entropy defines the pluggable lossless byte compressor used for the
// coefficient payload. The container codec depends only on the Codec interface,
// so backends can be swapped without touching the transform core. Each backend
// lives in its own sub-package.
package entropy

// Codec is a generic lossless bytes-to-bytes compressor. Implementations
// append their output to dst and return the extended slice; dst may be nil.
// Decompress must reject malformed input with an error, never panic.
type Codec interface {
	// Tag returns the four-byte identifier stored in the container header.
	Tag() string

	Compress(dst, src []byte) ([]byte, error)
	Decompress(dst, src []byte) ([]byte, error)
}
