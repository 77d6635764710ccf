package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies a class of vendorkill failure.
type ErrorCode string

const (
	ErrInvalidRoot      ErrorCode = "INVALID_ROOT"      // fatal
	ErrInvalidArgument  ErrorCode = "INVALID_ARGUMENT"  // fatal
	ErrScanFailed       ErrorCode = "SCAN_FAILED"       // fatal
	ErrInvalidSelection ErrorCode = "INVALID_SELECTION" // fatal
	ErrConfig           ErrorCode = "CONFIG"            // fatal
	ErrPartialScan      ErrorCode = "PARTIAL_SCAN"      // warning
	ErrSizePartial      ErrorCode = "SIZE_PARTIAL"      // warning
	ErrDeletionFailed   ErrorCode = "DELETION_FAILED"   // per entry
	ErrProtectedPath    ErrorCode = "PROTECTED_PATH"    // per entry
)

// VKError is a structured error carrying a code and, when relevant, the
// path it concerns.
type VKError struct {
	Code    ErrorCode
	Message string
	Path    string
	Err     error
}

// Error implements the error interface.
func (e *VKError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause.
func (e *VKError) Unwrap() error {
	return e.Err
}

// Fatal reports whether the error must stop the pipeline.
func (e *VKError) Fatal() bool {
	switch e.Code {
	case ErrPartialScan, ErrSizePartial, ErrDeletionFailed, ErrProtectedPath:
		return false
	}
	return true
}

// NewInvalidRoot is returned when the search root is missing, not a
// directory, or cannot be listed.
func NewInvalidRoot(path string, err error) *VKError {
	return &VKError{
		Code:    ErrInvalidRoot,
		Message: "search root is not a readable directory",
		Path:    path,
		Err:     err,
	}
}

// NewInvalidArgument creates an error for a bad option value.
func NewInvalidArgument(msg string) *VKError {
	return &VKError{
		Code:    ErrInvalidArgument,
		Message: msg,
	}
}

// NewScanFailed wraps a traversal failure that aborts the whole scan.
func NewScanFailed(path string, err error) *VKError {
	return &VKError{
		Code:    ErrScanFailed,
		Message: "directory scan aborted",
		Path:    path,
		Err:     err,
	}
}

// NewPartialScan records a subtree that could not be read.
func NewPartialScan(path string, err error) *VKError {
	return &VKError{
		Code:    ErrPartialScan,
		Message: "skipped unreadable directory",
		Path:    path,
		Err:     err,
	}
}

// NewSizePartial records that a size is a lower bound because some entries
// under path could not be read.
func NewSizePartial(path string, skipped int) *VKError {
	return &VKError{
		Code:    ErrSizePartial,
		Message: fmt.Sprintf("size is a lower bound, %d entries unreadable", skipped),
		Path:    path,
	}
}

// NewInvalidSelection is returned when the gateway hands back an index
// outside the catalog.
func NewInvalidSelection(index, size int) *VKError {
	return &VKError{
		Code:    ErrInvalidSelection,
		Message: fmt.Sprintf("selected index %d is outside 1..%d", index, size),
	}
}

// NewDeletionFailed wraps a failure to remove one entry.
func NewDeletionFailed(path string, err error) *VKError {
	return &VKError{
		Code:    ErrDeletionFailed,
		Message: "could not remove directory",
		Path:    path,
		Err:     err,
	}
}

// NewProtectedPath is returned when a removal targets a path that must never
// be deleted.
func NewProtectedPath(path string) *VKError {
	return &VKError{
		Code:    ErrProtectedPath,
		Message: "refusing to remove protected path",
		Path:    path,
	}
}

// NewConfig wraps a configuration load or validation failure.
func NewConfig(path string, err error) *VKError {
	return &VKError{
		Code:    ErrConfig,
		Message: "invalid configuration",
		Path:    path,
		Err:     err,
	}
}

// Is checks if err, or anything it wraps, is a VKError with the given code.
func Is(err error, code ErrorCode) bool {
	var vkErr *VKError
	if stderrors.As(err, &vkErr) {
		return vkErr.Code == code
	}
	return false
}

// IsFatal reports whether err should abort the run. Errors that are not
// VKErrors are always fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var vkErr *VKError
	if stderrors.As(err, &vkErr) {
		return vkErr.Fatal()
	}
	return true
}
