package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrCacheMiss indicates a cache miss
	ErrCacheMiss = errors.New("cache miss")

	// ErrResolution indicates a manifest reference could not be mapped to a file
	ErrResolution = errors.New("manifest file cannot be resolved")

	// ErrRead indicates a file exists but could not be read
	ErrRead = errors.New("file cannot be read")

	// ErrFormat indicates the manifest is not well-formed
	ErrFormat = errors.New("invalid manifest format")

	// ErrInvalidEntry indicates the requested entry point is missing or not an entry
	ErrInvalidEntry = errors.New("invalid entry point")

	// ErrInvalidAsset indicates the requested asset is missing from the manifest
	ErrInvalidAsset = errors.New("invalid asset")

	// ErrAmbiguousEntry indicates the entry point could not be determined automatically
	ErrAmbiguousEntry = errors.New("entry point cannot be determined")
)

// ResolutionError is returned when a manifest reference does not point to an
// existing file.
type ResolutionError struct {
	Reference string
	Resolved  string
	Err       error
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("manifest file %q was resolved to %q and cannot be opened", e.Reference, e.Resolved)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}

// NewResolutionError creates a new ResolutionError
func NewResolutionError(reference, resolved string, err error) *ResolutionError {
	return &ResolutionError{
		Reference: reference,
		Resolved:  resolved,
		Err:       err,
	}
}

// ReadError is returned when a file exists but its bytes cannot be read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unable to open file %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (e *ReadError) Is(target error) bool {
	return target == ErrRead
}

// NewReadError creates a new ReadError
func NewReadError(path string, err error) *ReadError {
	return &ReadError{Path: path, Err: err}
}

// FormatError is returned when manifest bytes are not a well-formed manifest.
// Chunk is set when a single record is at fault.
type FormatError struct {
	Path  string
	Chunk string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Chunk != "" {
		return fmt.Sprintf("invalid vite manifest file %q: chunk %q: %v", e.Path, e.Chunk, e.Err)
	}
	return fmt.Sprintf("invalid vite manifest file %q: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// NewFormatError creates a new FormatError
func NewFormatError(path, chunk string, err error) *FormatError {
	return &FormatError{Path: path, Chunk: chunk, Err: err}
}

// InvalidEntryError is returned when an entry is absent or not flagged isEntry
type InvalidEntryError struct {
	Entry    string
	Manifest string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("invalid vite entry point %q in manifest file %q", e.Entry, e.Manifest)
}

func (e *InvalidEntryError) Is(target error) bool {
	return target == ErrInvalidEntry
}

// NewInvalidEntryError creates a new InvalidEntryError
func NewInvalidEntryError(entry, manifest string) *InvalidEntryError {
	return &InvalidEntryError{Entry: entry, Manifest: manifest}
}

// InvalidAssetError is returned when an asset key is absent from the manifest
type InvalidAssetError struct {
	Asset    string
	Manifest string
}

func (e *InvalidAssetError) Error() string {
	return fmt.Sprintf("invalid asset file %q in vite manifest file %q", e.Asset, e.Manifest)
}

func (e *InvalidAssetError) Is(target error) bool {
	return target == ErrInvalidAsset
}

// NewInvalidAssetError creates a new InvalidAssetError
func NewInvalidAssetError(asset, manifest string) *InvalidAssetError {
	return &InvalidAssetError{Asset: asset, Manifest: manifest}
}

// AmbiguousEntryError is returned when auto-detection finds zero or several
// entry points.
type AmbiguousEntryError struct {
	Manifest string
	Count    int
}

func (e *AmbiguousEntryError) Error() string {
	return fmt.Sprintf("appropriate vite entrypoint could not be determined automatically: expected 1 entrypoint in %q, found %d", e.Manifest, e.Count)
}

func (e *AmbiguousEntryError) Is(target error) bool {
	return target == ErrAmbiguousEntry
}

// NewAmbiguousEntryError creates a new AmbiguousEntryError
func NewAmbiguousEntryError(manifest string, count int) *AmbiguousEntryError {
	return &AmbiguousEntryError{Manifest: manifest, Count: count}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
