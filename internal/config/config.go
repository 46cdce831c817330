package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"swipe/internal/eventbus"
	"swipe/internal/swiper"
)

// FileName is the config file looked up inside the panels directory
const FileName = ".swipe.toml"

// CurrentVersion is written into every saved config
const CurrentVersion = 1

// Config represents the application configuration
type Config struct {
	Version    int          `toml:"version" mapstructure:"version"`
	PanelsDir  string       `toml:"panels_dir" mapstructure:"panels_dir"`
	Swiper     SwiperConfig `toml:"swiper" mapstructure:"swiper"`
	UISettings UISettings   `toml:"ui" mapstructure:"ui"`
}

// SwiperConfig mirrors swiper.Options in file-friendly units
type SwiperConfig struct {
	Width             float64 `toml:"width" mapstructure:"width"`
	Height            float64 `toml:"height" mapstructure:"height"`
	DurationMs        int     `toml:"duration_ms" mapstructure:"duration_ms"`
	InitPage          int     `toml:"init_page" mapstructure:"init_page"`
	AutoPlayMs        int     `toml:"autoplay_ms" mapstructure:"autoplay_ms"`
	Direction         string  `toml:"direction" mapstructure:"direction"`
	PaginationColor   string  `toml:"pagination_color" mapstructure:"pagination_color"`
	PaginationVisible bool    `toml:"pagination_visible" mapstructure:"pagination_visible"`
	Loop              bool    `toml:"loop" mapstructure:"loop"`
	Touchable         bool    `toml:"touchable" mapstructure:"touchable"`
	PreventDefault    bool    `toml:"prevent_default" mapstructure:"prevent_default"`
	StopPropagation   bool    `toml:"stop_propagation" mapstructure:"stop_propagation"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AutosaveOnExit  bool `toml:"autosave_on_exit" mapstructure:"autosave_on_exit"`
	WatchPanels     bool `toml:"watch_panels" mapstructure:"watch_panels"`
	FrameIntervalMs int  `toml:"frame_interval_ms" mapstructure:"frame_interval_ms"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file used for a panels directory
func DefaultPath(panelsDir string) string {
	return filepath.Join(panelsDir, FileName)
}

// NewConfigService creates a config service reading and writing path
func NewConfigService(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the
// defaults (still subject to SWIPE_* environment overrides).
func (cs *configService) Load() (*Config, error) {
	cfg, err := read(cs.filePath, false)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{PanelsDir: cfg.PanelsDir})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return read(path, true)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := *config
	out.Version = CurrentVersion
	data, err := toml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func read(path string, mustExist bool) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("toml")
	v.SetEnvPrefix("SWIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
			if mustExist {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("panels_dir", d.PanelsDir)

	v.SetDefault("swiper.width", d.Swiper.Width)
	v.SetDefault("swiper.height", d.Swiper.Height)
	v.SetDefault("swiper.duration_ms", d.Swiper.DurationMs)
	v.SetDefault("swiper.init_page", d.Swiper.InitPage)
	v.SetDefault("swiper.autoplay_ms", d.Swiper.AutoPlayMs)
	v.SetDefault("swiper.direction", d.Swiper.Direction)
	v.SetDefault("swiper.pagination_color", d.Swiper.PaginationColor)
	v.SetDefault("swiper.pagination_visible", d.Swiper.PaginationVisible)
	v.SetDefault("swiper.loop", d.Swiper.Loop)
	v.SetDefault("swiper.touchable", d.Swiper.Touchable)
	v.SetDefault("swiper.prevent_default", d.Swiper.PreventDefault)
	v.SetDefault("swiper.stop_propagation", d.Swiper.StopPropagation)

	v.SetDefault("ui.autosave_on_exit", d.UISettings.AutosaveOnExit)
	v.SetDefault("ui.watch_panels", d.UISettings.WatchPanels)
	v.SetDefault("ui.frame_interval_ms", d.UISettings.FrameIntervalMs)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	opts := swiper.DefaultOptions()
	return &Config{
		Version:   CurrentVersion,
		PanelsDir: ".",
		Swiper: SwiperConfig{
			DurationMs:        int(opts.Duration / time.Millisecond),
			Direction:         opts.Axis.String(),
			PaginationColor:   opts.PaginationColor,
			PaginationVisible: true,
			Loop:              opts.Loop,
			Touchable:         opts.Touchable,
			PreventDefault:    opts.PreventDefault,
			StopPropagation:   opts.StopPropagation,
		},
		UISettings: UISettings{
			AutosaveOnExit:  false,
			WatchPanels:     true,
			FrameIntervalMs: 16,
		},
	}
}

// ToOptions converts the swiper section to engine options. Invalid values
// are normalized; the returned error lists what was corrected.
func (c *Config) ToOptions() (swiper.Options, error) {
	s := c.Swiper
	axis, axisErr := swiper.ParseAxis(s.Direction)

	opts := swiper.Options{
		Width:             s.Width,
		Height:            s.Height,
		Duration:          time.Duration(s.DurationMs) * time.Millisecond,
		InitPage:          s.InitPage,
		AutoPlay:          time.Duration(s.AutoPlayMs) * time.Millisecond,
		Axis:              axis,
		PaginationColor:   s.PaginationColor,
		PaginationVisible: s.PaginationVisible,
		Loop:              s.Loop,
		Touchable:         s.Touchable,
		PreventDefault:    s.PreventDefault,
		StopPropagation:   s.StopPropagation,
	}
	return opts.Normalize(), errors.Join(axisErr, opts.Validate())
}

// ApplyRuntime records the state worth restoring on the next start
func (c *Config) ApplyRuntime(page int, autoPlay time.Duration) {
	c.Swiper.InitPage = page
	c.Swiper.AutoPlayMs = int(autoPlay / time.Millisecond)
}

// FrameInterval returns the UI frame interval, never less than 1ms
func (c *Config) FrameInterval() time.Duration {
	if c.UISettings.FrameIntervalMs < 1 {
		return time.Millisecond
	}
	return time.Duration(c.UISettings.FrameIntervalMs) * time.Millisecond
}
