package app

import (
	"go.trai.ch/jmod/internal/core/ports"
	"go.trai.ch/jmod/internal/engine/modnames"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Resolver *modnames.Resolver
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, resolver *modnames.Resolver) *Components {
	return &Components{
		App:      app,
		Logger:   logger,
		Resolver: resolver,
	}
}
