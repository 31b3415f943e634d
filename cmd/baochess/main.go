package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/BaoChess/internal/config"
	"github.com/mitchelldurbincs/BaoChess/internal/game"
	"github.com/mitchelldurbincs/BaoChess/internal/game/events"
	"github.com/mitchelldurbincs/BaoChess/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/BaoChess/internal/ui"
	"github.com/mitchelldurbincs/BaoChess/internal/ui/renderer"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", os.Getenv("APP_ENV"), "Environment overlay (loads config.<env>.yaml)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	watch := flag.Bool("watch", true, "Reload the config file when it changes")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}

	cfg := config.Get()
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel, cfg.Logging.Format)

	log.Info().
		Str("config", config.ConfigFilePath()).
		Int("starting_seconds", cfg.Game.StartingSeconds).
		Bool("auto_flip", cfg.Orientation.AutoFlip).
		Msg("Starting Bao Chess")

	bus := events.NewEventBus()
	bus.SetLogger(log.Logger)
	if cfg.Development.DevEvents {
		bus.Subscribe(subscribers.NewLoggerSubscriber("dev-events", log.Logger, zerolog.InfoLevel))
	}

	engine, err := game.NewEngine(context.Background(), game.GameConfig{
		StartFEN:        cfg.Game.StartFEN,
		StartingSeconds: cfg.Game.StartingSeconds,
		TickInterval:    cfg.Game.TickInterval(),
		AutoFlip:        cfg.Orientation.AutoFlip,
		FlipDelay:       cfg.Orientation.FlipDelay(),
		Logger:          log.Logger,
		EventBus:        bus,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game engine")
	}

	theme, err := ui.ThemeFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid board colors")
	}
	fonts, err := renderer.LoadFonts(cfg.UI.Font.Path, cfg.UI.Font.Size)
	if err != nil {
		log.Warn().Err(err).Msg("Falling back to the built-in font")
	}

	// the watcher goroutine only hands the new config to the frame loop
	reloads := make(chan *config.Config, 1)
	if *watch && fileExists(config.ConfigFilePath()) {
		config.WatchConfig(func(c *config.Config) {
			select {
			case reloads <- c:
			default:
				log.Debug().Msg("Reload already pending, dropping older config")
			}
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring invalid config change")
		})
	}

	uiGame := ui.NewUIGame(engine, ui.Options{
		TileSize:        cfg.UI.Board.TileSize,
		Theme:           theme,
		Fonts:           fonts,
		ShowCoordinates: cfg.Development.ShowCoordinates,
		Logger:          log.Logger,
		Reloads:         reloads,
	})

	ebiten.SetWindowSize(cfg.UI.Window.Width, cfg.UI.Window.Height)
	ebiten.SetWindowTitle(cfg.UI.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(uiGame); err != nil {
		log.Fatal().Err(err).Msg("Game loop exited")
	}
}

func setupLogging(level, format string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
