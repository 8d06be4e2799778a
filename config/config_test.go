package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "spectrogram", cfg.Title)
	assert.Equal(t, FilterNearest, cfg.Filter)
	assert.Equal(t, BlendAlpha, cfg.Blend)
	assert.Equal(t, 640, WindowSize.X)
	assert.Equal(t, 480, WindowSize.Y)
}

func TestParse(t *testing.T) {
	cfg, err := Parse("debug", "  my view ", "Linear", "add")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "my view", cfg.Title)
	assert.Equal(t, FilterLinear, cfg.Filter)
	assert.Equal(t, BlendAdd, cfg.Blend)
}

func TestParseBlankTitleKeepsDefault(t *testing.T) {
	cfg, err := Parse("info", " ", "nearest", "alpha")
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, cfg.Title)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name                           string
		level, filter, blend, errorMsg string
	}{
		{"level", "verbose", "nearest", "alpha", "invalid log level: verbose"},
		{"filter", "info", "cubic", "alpha", "invalid filter: cubic"},
		{"blend", "info", "nearest", "multiply", "invalid blend mode: multiply"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.level, "", tt.filter, tt.blend)
			require.EqualError(t, err, tt.errorMsg)
			assert.Nil(t, cfg)
		})
	}
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "nearest", FilterNearest.String())
	assert.Equal(t, "linear", FilterLinear.String())
	assert.Equal(t, "alpha", BlendAlpha.String())
	assert.Equal(t, "add", BlendAdd.String())
}
