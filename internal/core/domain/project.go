package domain

// Project is the resolved location of a compilation: where resources live and which one is the main document.
type Project struct {
	// Root is the canonical project root every virtual path resolves against.
	Root string
	// Workdir is the working directory captured when the project was resolved.
	Workdir string
	// Main identifies the main document.
	Main ResourceID
}
