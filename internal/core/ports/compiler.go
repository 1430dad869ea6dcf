package ports

import "context"

// Compiler turns the main document of a world into output bytes.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile compiles world's main document using at most jobs parallel workers.
	Compile(ctx context.Context, world World, jobs int) ([]byte, error)
}
