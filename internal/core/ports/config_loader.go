package ports

import "go.trai.ch/relock/internal/core/domain"

// ConfigLoader defines the interface for loading the relock configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the project in dir.
	// path overrides the config location when non-empty; relative paths are resolved against dir.
	// A missing default config file yields domain.DefaultConfig().
	Load(dir, path string) (*domain.Config, error)
}
