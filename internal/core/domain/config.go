package domain

import "time"

// Config is the fully layered configuration of one quire invocation.
type Config struct {
	// Root is the project root; empty means the input's directory.
	Root string
	// Input is the main document path, or "-" for standard input.
	Input string
	// Output is the compiled document destination, "-" for standard output, empty to skip writing.
	Output string
	// PackagePath is the directory holding local packages.
	PackagePath string
	// CreationTimestamp fixes the clock for reproducible builds.
	CreationTimestamp *time.Time
	// Inputs are the key/value pairs visible to documents.
	Inputs map[string]string
	// Jobs bounds the number of parallel compiler workers.
	Jobs int
	// DepsPath is where to write the dependency file, "-" for standard output, empty to skip.
	DepsPath string
	// DepsFormat is the encoding of the dependency file.
	DepsFormat DepsFormat
}
