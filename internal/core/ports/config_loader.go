package ports

import "go.trai.ch/quire/internal/core/domain"

// ConfigLoader defines the interface for loading the configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project file in cwd, if any, and overlays the environment.
	Load(cwd string) (*domain.Config, error)
}
