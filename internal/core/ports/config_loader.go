// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/jmod/internal/core/domain"

// WorkspaceLoader defines the interface for loading the workspace configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type WorkspaceLoader interface {
	// Load reads the workspace file found from the given working directory.
	Load(cwd string) (*domain.Workspace, error)

	// DiscoverRoot walks up from cwd to find the workspace root.
	// Returns the directory containing jmod.yaml.
	DiscoverRoot(cwd string) (string, error)
}
