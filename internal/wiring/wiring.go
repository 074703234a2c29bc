// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fold/internal/adapters/cas"
	_ "go.trai.ch/fold/internal/adapters/config"
	_ "go.trai.ch/fold/internal/adapters/esbuild"
	_ "go.trai.ch/fold/internal/adapters/fs"
	_ "go.trai.ch/fold/internal/adapters/logger"
	_ "go.trai.ch/fold/internal/adapters/minify"
	_ "go.trai.ch/fold/internal/adapters/notify"
	_ "go.trai.ch/fold/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/fold/internal/app"
	_ "go.trai.ch/fold/internal/engine/compiler"
)
