package domain

import (
	"errors"
	"io/fs"
	"syscall"
)

// FileErrorKind classifies a failure to read a resource.
type FileErrorKind uint8

const (
	// KindNotFound means the resource does not exist.
	KindNotFound FileErrorKind = iota
	// KindAccessDenied means the resource escapes its root or the OS denied access.
	KindAccessDenied
	// KindIsDirectory means the resource is a directory.
	KindIsDirectory
	// KindIO is any other I/O failure.
	KindIO
	// KindInvalidEncoding means the resource is not valid UTF-8.
	KindInvalidEncoding
)

// String returns the kind's name.
func (k FileErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not-found"
	case KindAccessDenied:
		return "access-denied"
	case KindIsDirectory:
		return "is-directory"
	case KindIO:
		return "io"
	case KindInvalidEncoding:
		return "invalid-encoding"
	default:
		return "unknown"
	}
}

func (k FileErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindAccessDenied:
		return ErrAccessDenied
	case KindIsDirectory:
		return ErrIsDirectory
	case KindInvalidEncoding:
		return ErrInvalidEncoding
	default:
		return ErrIO
	}
}

// FileError is the error value cached and returned for a resource that could not be read or decoded.
// It matches the kind's sentinel with errors.Is, e.g. errors.Is(err, ErrNotFound).
type FileError struct {
	Kind FileErrorKind
	// Path is the system path involved, empty when the failure happened before resolution.
	Path string
	// Err is the underlying cause, if any.
	Err error
}

// NewFileError creates a FileError of the given kind.
func NewFileError(kind FileErrorKind, path string, cause error) *FileError {
	return &FileError{Kind: kind, Path: path, Err: cause}
}

// FileErrorFromIO classifies an error returned by the os package.
func FileErrorFromIO(err error, path string) *FileError {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NewFileError(KindNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return NewFileError(KindAccessDenied, path, err)
	case errors.Is(err, syscall.EISDIR):
		return NewFileError(KindIsDirectory, path, err)
	default:
		return NewFileError(KindIO, path, err)
	}
}

func (e *FileError) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Kind == KindIO && e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Message returns the message without the cause chain.
func (e *FileError) Message() string {
	msg := e.Kind.sentinel().Error()
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *FileError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *FileError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// FileErrorKindOf extracts the kind of a FileError in err's chain.
func FileErrorKindOf(err error) (FileErrorKind, bool) {
	var fe *FileError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
