package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
)

const (
	// QuireDirName is the name of the internal workspace directory.
	QuireDirName = ".quire"

	// BuildsDirName is the directory inside the workspace holding one manifest per main document.
	BuildsDirName = "builds"

	// ProjectFileName is the name of the optional project configuration file.
	ProjectFileName = "quire.yaml"

	// DefaultInput is the main document compiled when no input is given.
	DefaultInput = "main.qd"

	// StdinArg selects standard input as input, or standard output as output.
	StdinArg = "-"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// BuildsDir returns the directory holding the manifests of a project root.
func BuildsDir(root string) string {
	return filepath.Join(root, QuireDirName, BuildsDirName)
}

// ManifestPath returns the manifest file for a main document of a project root.
// The file name is the hex sha256 of main.
func ManifestPath(root, main string) string {
	sum := sha256.Sum256([]byte(main))
	return filepath.Join(BuildsDir(root), hex.EncodeToString(sum[:])+".json")
}
