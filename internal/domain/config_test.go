package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DragModeDelta, cfg.Drag.Mode)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultPalette(), cfg.Colors)
	assert.InDelta(t, DefaultTaskHeight, cfg.Chart.TaskHeight, 0)
	assert.InDelta(t, DefaultHitSlop, cfg.Chart.HitSlop, 0)
	assert.Len(t, cfg.Tasks, 3)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultSeeds_Build(t *testing.T) {
	for _, seed := range DefaultSeeds() {
		_, err := seed.Build()
		assert.NoError(t, err, seed.Name)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		wantErr error
		mutate  func(*Config)
		name    string
	}{
		{name: "zero task height", mutate: func(c *Config) { c.Chart.TaskHeight = 0 }, wantErr: ErrInvalidLayout},
		{name: "negative handle", mutate: func(c *Config) { c.Chart.HandleWidth = -1 }, wantErr: ErrInvalidLayout},
		{name: "negative hit slop", mutate: func(c *Config) { c.Chart.HitSlop = -0.5 }, wantErr: ErrInvalidLayout},
		{name: "unknown drag mode", mutate: func(c *Config) { c.Drag.Mode = "relative" }, wantErr: ErrInvalidDragMode},
		{name: "bad color", mutate: func(c *Config) { c.Colors.Bar = "purple" }, wantErr: ErrInvalidColor},
		{name: "short color", mutate: func(c *Config) { c.Colors.Grid = "#fff" }, wantErr: ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestChartConfig_FrameInterval(t *testing.T) {
	assert.Equal(t, 16*time.Millisecond, ChartConfig{}.FrameInterval())
	assert.Equal(t, 40*time.Millisecond, ChartConfig{FrameIntervalMS: 40}.FrameInterval())
}

func TestRenderConfigTemplate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Drag.Mode = DragModeAbsolute
	cfg.Colors.Bar = "#112233"

	out := RenderConfigTemplate(cfg)

	assert.Contains(t, out, "[chart]")
	assert.Contains(t, out, `mode = "absolute"`)
	assert.Contains(t, out, `bar = "#112233"`)
	assert.Contains(t, out, "hit_slop = 0.5")
	assert.False(t, strings.Contains(out, "<<"), "template delimiters must be expanded")
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	out := RenderConfigTemplate(NewDefaultConfig())

	var raw map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &raw))
	assert.Contains(t, raw, "chart")
	assert.Contains(t, raw, "drag")
	assert.Contains(t, raw, "colors")
	assert.Contains(t, raw, "log")
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/cfg/gantt", GlobalConfigDir("/cfg"))
	assert.Equal(t, "/cfg/gantt/config.toml", GlobalConfigPath("/cfg"))
	assert.Equal(t, "/state/gantt/logs", StateLogDir("/state"))
	assert.Equal(t, "/logs/gantt.log", LogPath("/logs"))
}
