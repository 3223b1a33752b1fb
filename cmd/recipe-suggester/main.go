package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"recipe-suggester/internal/app"
	"recipe-suggester/internal/catalog"
	"recipe-suggester/internal/config"
	"recipe-suggester/internal/debug"
	"recipe-suggester/internal/shutdown"

	"fyne.io/fyne/v2"
	"github.com/spf13/pflag"
)

const (
	exitFatal  = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return exitConfig
	}

	debugCoord, err := debug.NewCoordinator(cfg.DebugConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: open log: %v\n", config.AppName, err)
		return exitConfig
	}

	logger := debugCoord.Logger()
	if cfg.ConfigFile != "" {
		logger.Info("Main", "config file loaded", map[string]interface{}{
			"path": cfg.ConfigFile,
		})
	}

	fyneApp := app.NewFyneApp()

	tracker := debugCoord.TimingTracker()
	ctx := tracker.StartTiming(context.Background(), "load_catalog")
	foods, stats, err := catalog.NewLoader(logger).LoadFile(cfg.CatalogPath)
	elapsed := tracker.EndTiming(ctx)
	if err != nil {
		logger.Error("Main", err, map[string]interface{}{
			"catalog": cfg.CatalogPath,
		})
		app.ShowFatalError(fyneApp, fmt.Errorf("could not load the food catalog: %w", err))
		debugCoord.Shutdown()
		return exitFatal
	}

	logger.Info("Main", "catalog loaded", map[string]interface{}{
		"path":       cfg.CatalogPath,
		"foods":      stats.Loaded,
		"malformed":  stats.Malformed,
		"duplicates": stats.Duplicates,
		"duration":   elapsed.String(),
	})

	application, err := app.NewApplication(fyneApp, cfg, foods, debugCoord)
	if err != nil {
		logger.Error("Main", err, nil)
		app.ShowFatalError(fyneApp, err)
		debugCoord.Shutdown()
		return exitFatal
	}

	shutdownManager := shutdown.NewManager(logger)
	shutdownManager.Register(shutdown.Func(func() { fyne.Do(application.Quit) }))
	shutdownManager.Listen()

	// from here on the application's lifecycle shuts the coordinator down
	if err := application.Run(); err != nil {
		logger.Error("Main", err, nil)
		return exitFatal
	}
	return 0
}
