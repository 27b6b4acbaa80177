package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tilesmith/internal/config"
	"tilesmith/internal/items"
	"tilesmith/internal/world"
	"tilesmith/logging"
	loggingsinks "tilesmith/logging/sinks"
)

// Options selects the files Run loads before handing off to ebiten.
type Options struct {
	ConfigPath string
	MapPath    string
}

// Run loads config and map, wires the logging router and blocks inside the
// ebiten loop until the window closes.
func Run(ctx context.Context, opts Options) error {
	cfg, cfgErr := config.Load(opts.ConfigPath)

	router, cleanup, err := buildRouter(cfg)
	if err != nil {
		return fmt.Errorf("failed to construct logging router: %w", err)
	}
	defer func() {
		router.Close(ctx)
		cleanup()
	}()

	if cfgErr != nil {
		router.Publish(ctx, logging.Event{
			Type:     "system.config_fallback",
			Severity: logging.SeverityWarn,
			Category: logging.CategorySystem,
			Payload:  map[string]string{"path": opts.ConfigPath, "error": cfgErr.Error()},
		})
	}

	catalog := items.DefaultCatalog()
	worldMap, err := world.LoadFile(opts.MapPath, catalog)
	if err != nil {
		return fmt.Errorf("failed to load map %s: %w", opts.MapPath, err)
	}

	game := NewGame(Params{
		Config:     cfg,
		ConfigPath: opts.ConfigPath,
		Catalog:    catalog,
		World:      worldMap,
		Publisher:  router,
	})
	defer game.Close()

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Tilesmith")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

// buildRouter instantiates the sinks named by the config. The returned
// cleanup closes the log file, if one was opened.
func buildRouter(cfg config.Config) (*logging.Router, func(), error) {
	logCfg := logging.DefaultConfig()
	logCfg.EnabledSinks = cfg.Logging.Sinks
	logCfg.JSON.FilePath = cfg.Logging.LogFile

	var sinks []logging.NamedSink
	cleanup := func() {}
	if logCfg.HasSink("console") {
		sinks = append(sinks, logging.NamedSink{Name: "console", Sink: loggingsinks.NewConsole(os.Stdout)})
	}
	if logCfg.HasSink("json") {
		path := logCfg.JSON.FilePath
		if path == "" {
			path = "tilesmith.log"
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		sinks = append(sinks, logging.NamedSink{Name: "json", Sink: loggingsinks.NewJSON(f)})
		cleanup = func() { _ = f.Close() }
	}

	return logging.NewRouter(nil, logCfg, sinks), cleanup, nil
}
