package manifest

import "errors"

// Structural errors wrapped by domain.FormatError
var (
	// ErrNotObject indicates the document or a chunk record is not a JSON object
	ErrNotObject = errors.New("expected a JSON object")

	// ErrMissingFile indicates a chunk has no emitted file
	ErrMissingFile = errors.New("chunk has no file")

	// ErrInvalidField indicates a chunk field has an unsupported type
	ErrInvalidField = errors.New("unsupported field type")
)
