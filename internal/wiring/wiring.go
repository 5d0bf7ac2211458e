// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/relock/internal/adapters/bundler"
	_ "go.trai.ch/relock/internal/adapters/config"
	_ "go.trai.ch/relock/internal/adapters/fs"
	_ "go.trai.ch/relock/internal/adapters/git"
	_ "go.trai.ch/relock/internal/adapters/logger"
	_ "go.trai.ch/relock/internal/adapters/pipcompile"
	_ "go.trai.ch/relock/internal/adapters/shell"
	_ "go.trai.ch/relock/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/relock/internal/app"
	_ "go.trai.ch/relock/internal/engine/orchestrator"
	_ "go.trai.ch/relock/internal/engine/unlock"
)
