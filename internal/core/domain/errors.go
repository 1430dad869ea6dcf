package domain

import "go.trai.ch/zerr"

var (
	// ErrNotFound is returned when a resource does not exist on disk.
	ErrNotFound = zerr.New("file not found")

	// ErrAccessDenied is returned when a resource resolves outside its root or the OS denies access.
	ErrAccessDenied = zerr.New("access denied")

	// ErrIsDirectory is returned when a resource resolves to a directory.
	ErrIsDirectory = zerr.New("is a directory")

	// ErrIO is returned for any other failure while reading a resource.
	ErrIO = zerr.New("failed to read file")

	// ErrInvalidEncoding is returned when a resource is not valid UTF-8 after the byte order mark is stripped.
	ErrInvalidEncoding = zerr.New("file is not valid utf-8")

	// ErrNotLoaded is returned by line lookups for resources that were never read in this session.
	ErrNotLoaded = zerr.New("resource was not loaded")

	// ErrInputNotFound is returned when the compilation input does not exist.
	ErrInputNotFound = zerr.New("input file not found")

	// ErrInputOutsideRoot is returned when the compilation input is not contained in the project root.
	ErrInputOutsideRoot = zerr.New("source file must be contained in project root")

	// ErrRootNotFound is returned when the project root does not exist.
	ErrRootNotFound = zerr.New("root directory not found")

	// ErrInvalidVirtualPath is returned when a virtual path cannot be formed from a system path.
	ErrInvalidVirtualPath = zerr.New("invalid virtual path")

	// ErrInvalidPackageSpec is returned when a package specification cannot be parsed.
	ErrInvalidPackageSpec = zerr.New("invalid package specification, expected @namespace/name:version")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidTimestamp is returned when a creation timestamp is not a decimal UNIX timestamp.
	ErrInvalidTimestamp = zerr.New("timestamp must be decimal integer")

	// ErrTimestampOutOfRange is returned when a creation timestamp cannot be represented.
	ErrTimestampOutOfRange = zerr.New("timestamp out of range")

	// ErrInvalidInputPair is returned when a sys input is not a key=value pair.
	ErrInvalidInputPair = zerr.New("input must be a key and a value separated by an equal sign")

	// ErrEmptyInputKey is returned when a sys input has an empty key.
	ErrEmptyInputKey = zerr.New("the key was missing or empty")

	// ErrInvalidDepsFormat is returned when an unknown dependency file format is requested.
	ErrInvalidDepsFormat = zerr.New("invalid deps format, expected 'json', 'zero' or 'make'")

	// ErrDepsNotUnicode is returned when a dependency path cannot be encoded in the JSON format.
	ErrDepsNotUnicode = zerr.New("dependency path is not valid unicode")

	// ErrCyclicImport is returned by the compiler when a document imports itself transitively.
	ErrCyclicImport = zerr.New("cyclic import")

	// ErrInvalidDirective is returned by the compiler for a malformed directive line.
	ErrInvalidDirective = zerr.New("invalid directive")

	// ErrCompileFailed is returned when a compilation cycle fails.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrOutputWriteFailed is returned when the compiled document cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output")

	// ErrStoreReadFailed is returned when the build manifest cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build manifest")

	// ErrStoreWriteFailed is returned when the build manifest cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build manifest")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch project root")
)
