// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dynver/internal/adapters/clock"
	_ "go.trai.ch/dynver/internal/adapters/config"
	_ "go.trai.ch/dynver/internal/adapters/logger"
	_ "go.trai.ch/dynver/internal/adapters/repository"
	_ "go.trai.ch/dynver/internal/adapters/versioncache"
	// Register app and engine nodes.
	_ "go.trai.ch/dynver/internal/app"
	_ "go.trai.ch/dynver/internal/engine/resolver"
)
