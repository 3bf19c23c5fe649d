// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lode/internal/adapters/cas"
	_ "go.trai.ch/lode/internal/adapters/config"
	_ "go.trai.ch/lode/internal/adapters/logger"
	_ "go.trai.ch/lode/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/lode/internal/app"
)
