package ports

import "go.trai.ch/quire/internal/core/domain"

// ProjectResolver locates the project a compilation runs in.
//
//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type ProjectResolver interface {
	// ResolveProject resolves input ("-" for standard input) and an optional root into a project.
	ResolveProject(input, root string) (domain.Project, error)
}
