// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jmod/internal/adapters/archive"
	_ "go.trai.ch/jmod/internal/adapters/classfile"
	_ "go.trai.ch/jmod/internal/adapters/config"
	_ "go.trai.ch/jmod/internal/adapters/index"
	_ "go.trai.ch/jmod/internal/adapters/javasrc"
	_ "go.trai.ch/jmod/internal/adapters/logger"
	_ "go.trai.ch/jmod/internal/adapters/telemetry"
	_ "go.trai.ch/jmod/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/jmod/internal/app"
	_ "go.trai.ch/jmod/internal/engine/modnames"
)
