package biowave

import "errors"

var (
	// ErrEmptyInput is returned when a zero-length signal is compressed.
	ErrEmptyInput = errors.New("biowave: empty input signal")

	// ErrSignalTooLong is returned for signals beyond the supported length.
	ErrSignalTooLong = errors.New("biowave: signal exceeds maximum supported length")

	// ErrInvalidScale is returned for quantization scales outside the
	// configured range.
	ErrInvalidScale = errors.New("biowave: quantization scale out of range")

	// ErrInvalidCutoff is returned for unknown cutoff policy tags.
	ErrInvalidCutoff = errors.New("biowave: unknown cutoff level")

	// ErrUnknownBackend is returned when options name an entropy backend
	// that is not registered.
	ErrUnknownBackend = errors.New("biowave: unknown entropy backend")
)
