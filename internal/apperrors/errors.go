package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrCorruptSnapshot indicates that a persisted snapshot could not be decoded.
// The store treats it as an empty snapshot on load.
var ErrCorruptSnapshot = errors.New("snapshot is malformed")

// ErrUnsupportedFormat indicates that an export format is not known.
var ErrUnsupportedFormat = errors.New("unsupported format")
