package config

import (
	"fmt"
	"image"
	"log/slog"
	"strings"
)

// Fixed properties of the viewer window.
var (
	WindowSize = image.Pt(640, 480)
)

const DefaultTitle = "spectrogram"

// Filter selects how the source texture is sampled when stretched.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Blend selects how the selection highlight is composited.
type Blend int

const (
	BlendAlpha Blend = iota
	BlendAdd
)

func (b Blend) String() string {
	switch b {
	case BlendAlpha:
		return "alpha"
	case BlendAdd:
		return "add"
	default:
		return "unknown"
	}
}

// Config holds the settings that can be changed from the command line.
type Config struct {
	LogLevel slog.Level
	Title    string
	Filter   Filter
	Blend    Blend
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: slog.LevelInfo,
		Title:    DefaultTitle,
		Filter:   FilterNearest,
		Blend:    BlendAlpha,
	}
}

func ResolveLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

func ResolveFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nearest":
		return FilterNearest, nil
	case "linear":
		return FilterLinear, nil
	default:
		return 0, fmt.Errorf("invalid filter: %s", name)
	}
}

func ResolveBlend(name string) (Blend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "alpha":
		return BlendAlpha, nil
	case "add":
		return BlendAdd, nil
	default:
		return 0, fmt.Errorf("invalid blend mode: %s", name)
	}
}

// Parse builds a Config from the raw flag values.
func Parse(logLevel, title, filter, blend string) (*Config, error) {
	cfg := DefaultConfig()
	var err error
	if cfg.LogLevel, err = ResolveLogLevel(logLevel); err != nil {
		return nil, err
	}
	if cfg.Filter, err = ResolveFilter(filter); err != nil {
		return nil, err
	}
	if cfg.Blend, err = ResolveBlend(blend); err != nil {
		return nil, err
	}
	if title = strings.TrimSpace(title); title != "" {
		cfg.Title = title
	}
	return cfg, nil
}
