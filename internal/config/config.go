package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/BaoChess/internal/common"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Orientation OrientationConfig `mapstructure:"orientation"`
	UI          UIConfig          `mapstructure:"ui"`
	Colors      ColorsConfig      `mapstructure:"colors"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds clock and start position settings
type GameConfig struct {
	StartingSeconds int    `mapstructure:"starting_seconds"`
	TickIntervalMs  int    `mapstructure:"tick_interval_ms"`
	StartFEN        string `mapstructure:"start_fen"`
}

// OrientationConfig controls how the board turns between moves
type OrientationConfig struct {
	AutoFlip    bool `mapstructure:"auto_flip"`
	FlipDelayMs int  `mapstructure:"flip_delay_ms"`
}

// UIConfig holds UI settings
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
	Board  BoardConfig  `mapstructure:"board"`
	Font   FontConfig   `mapstructure:"font"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// BoardConfig holds board drawing settings
type BoardConfig struct {
	TileSize int `mapstructure:"tile_size"`
}

// FontConfig selects the text face. An empty path uses the built-in bitmap font.
type FontConfig struct {
	Path string  `mapstructure:"path"`
	Size float64 `mapstructure:"size"`
}

// ColorsConfig holds palette overrides
type ColorsConfig struct {
	Board BoardColorsConfig `mapstructure:"board"`
}

// BoardColorsConfig holds square colors as #rrggbb strings
type BoardColorsConfig struct {
	Light string `mapstructure:"light"`
	Dark  string `mapstructure:"dark"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development settings
type DevelopmentConfig struct {
	ShowCoordinates bool `mapstructure:"show_coordinates"`
	DevEvents       bool `mapstructure:"dev_events"`
}

// TickInterval returns the clock tick period
func (g GameConfig) TickInterval() time.Duration {
	return time.Duration(g.TickIntervalMs) * time.Millisecond
}

// FlipDelay returns the auto-flip delay
func (o OrientationConfig) FlipDelay() time.Duration {
	return time.Duration(o.FlipDelayMs) * time.Millisecond
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.starting_seconds", 600)
	v.SetDefault("game.tick_interval_ms", 1000)
	v.SetDefault("game.start_fen", "")

	// Orientation defaults
	v.SetDefault("orientation.auto_flip", true)
	v.SetDefault("orientation.flip_delay_ms", 600)

	// UI defaults
	v.SetDefault("ui.window.width", 960)
	v.SetDefault("ui.window.height", 640)
	v.SetDefault("ui.window.title", "Bao Chess")
	v.SetDefault("ui.board.tile_size", 72)
	v.SetDefault("ui.font.path", "")
	v.SetDefault("ui.font.size", 14)

	// Colors
	v.SetDefault("colors.board.light", "#f0d9b5")
	v.SetDefault("colors.board.dark", "#b58863")

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Development defaults
	v.SetDefault("development.show_coordinates", true)
	v.SetDefault("development.dev_events", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/baochess")
	}

	// BAO_GAME_STARTING_SECONDS overrides game.starting_seconds
	v.SetEnvPrefix("BAO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing explicit file falls back to defaults too
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml, found next to the loaded
// config file, over the loaded values. A missing overlay is not an error.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	if base := v.ConfigFileUsed(); base != "" {
		envFile = filepath.Join(filepath.Dir(base), envFile)
	}
	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	// keep watching the base file after the merge
	base := v.ConfigFileUsed()
	v.SetConfigFile(envFile)
	err := v.MergeInConfig()
	v.SetConfigFile(base)
	if err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return Validate(cfg)
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	_ = v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// GetFloat64 gets a float64 value from config
func GetFloat64(key string) float64 {
	return v.GetFloat64(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange runs on the
// watcher goroutine with the freshly decoded config; invalid edits are
// reported through onError and leave the previous values in place.
func WatchConfig(onChange func(*Config), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := v.Unmarshal(next); err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		if err := Validate(next); err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		cfg = next
		if onChange != nil {
			onChange(next)
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.StartingSeconds <= 0 {
		return fmt.Errorf("%w: game.starting_seconds must be positive, got %d", ErrInvalidConfig, c.Game.StartingSeconds)
	}
	if c.Game.TickIntervalMs <= 0 {
		return fmt.Errorf("%w: game.tick_interval_ms must be positive, got %d", ErrInvalidConfig, c.Game.TickIntervalMs)
	}
	if c.Orientation.FlipDelayMs < 0 {
		return fmt.Errorf("%w: orientation.flip_delay_ms must not be negative, got %d", ErrInvalidConfig, c.Orientation.FlipDelayMs)
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("%w: window dimensions must be positive, got %dx%d", ErrInvalidConfig, c.UI.Window.Width, c.UI.Window.Height)
	}
	if c.UI.Board.TileSize < 16 {
		return fmt.Errorf("%w: ui.board.tile_size must be at least 16, got %d", ErrInvalidConfig, c.UI.Board.TileSize)
	}
	if c.UI.Font.Size <= 0 {
		return fmt.Errorf("%w: ui.font.size must be positive, got %g", ErrInvalidConfig, c.UI.Font.Size)
	}

	if _, err := common.ParseHexColor(c.Colors.Board.Light); err != nil {
		return fmt.Errorf("%w: colors.board.light: %v", ErrInvalidConfig, err)
	}
	if _, err := common.ParseHexColor(c.Colors.Board.Dark); err != nil {
		return fmt.Errorf("%w: colors.board.dark: %v", ErrInvalidConfig, err)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}
