package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoader_Load_Defaults(t *testing.T) {
	// Setup: neither file exists
	dir := t.TempDir()
	loader := NewLoaderWithGlobalDir(filepath.Join(dir, "gantt.toml"), filepath.Join(dir, "global"))

	// Execute
	cfg, err := loader.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	// Setup
	dir := t.TempDir()
	globalDir := t.TempDir()
	localPath := filepath.Join(dir, "gantt.toml")
	writeFile(t, localPath, `
[chart]
task_height = 3
handle_width = 2
hit_slop = 0
frame_interval_ms = 33

[drag]
mode = "absolute"

[colors]
bar = "#123456"

[log]
level = "debug"
dir = "/tmp/gantt-logs"
`)

	// Execute
	cfg, err := NewLoaderWithGlobalDir(localPath, globalDir).Load()

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 3, cfg.Chart.TaskHeight, 0)
	assert.InDelta(t, 2, cfg.Chart.HandleWidth, 0)
	assert.InDelta(t, 0, cfg.Chart.HitSlop, 0)
	assert.Equal(t, 33, cfg.Chart.FrameIntervalMS)
	assert.Equal(t, domain.DragModeAbsolute, cfg.Drag.Mode)
	assert.Equal(t, domain.Color("#123456"), cfg.Colors.Bar)
	assert.Equal(t, domain.DefaultPalette().Handle, cfg.Colors.Handle)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/gantt-logs", cfg.Log.Dir)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	// Setup
	dir := t.TempDir()
	globalDir := t.TempDir()
	localPath := filepath.Join(dir, "gantt.toml")
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[chart]
task_height = 4
label_pad_x = 2.5

[log]
level = "warn"
`)
	writeFile(t, localPath, `
[chart]
task_height = 5
`)

	// Execute
	cfg, err := NewLoaderWithGlobalDir(localPath, globalDir).Load()

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 5, cfg.Chart.TaskHeight, 0, "local wins")
	assert.InDelta(t, 2.5, cfg.Chart.LabelPadX, 0, "global kept where local is silent")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_LoadGlobal_IgnoresLocal(t *testing.T) {
	dir := t.TempDir()
	globalDir := t.TempDir()
	localPath := filepath.Join(dir, "gantt.toml")
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[drag]\nmode = \"absolute\"\n")
	writeFile(t, localPath, "[drag]\nmode = \"delta\"\n")

	cfg, err := NewLoaderWithGlobalDir(localPath, globalDir).LoadGlobal()

	require.NoError(t, err)
	assert.Equal(t, domain.DragModeAbsolute, cfg.Drag.Mode)
}

func TestLoader_Load_Tasks(t *testing.T) {
	// Setup: quoted strings and TOML local dates are both accepted
	dir := t.TempDir()
	localPath := filepath.Join(dir, "gantt.toml")
	writeFile(t, localPath, `
[[tasks]]
name = "Design"
start = "2023-04-01"
end = "2023-04-10"

[[tasks]]
name = "Build"
start = 2023-04-05
end = 2023-04-15
`)

	// Execute
	cfg, err := NewLoaderWithGlobalDir(localPath, "").Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []domain.TaskSeed{
		{Name: "Design", Start: "2023-04-01", End: "2023-04-10"},
		{Name: "Build", Start: "2023-04-05", End: "2023-04-15"},
	}, cfg.Tasks)
}

func TestLoader_Load_UnknownKeysWarn(t *testing.T) {
	dir := t.TempDir()
	localPath := filepath.Join(dir, "gantt.toml")
	writeFile(t, localPath, `
[chart]
zoom = 2

[drag]
snap = true

[colors]
background = "#000000"

[log]
format = "json"

[server]
port = 8080

[[tasks]]
name = "Design"
start = "2023-04-01"
end = "2023-04-10"
owner = "ann"
`)

	cfg, err := NewLoaderWithGlobalDir(localPath, "").Load()

	require.NoError(t, err)
	assert.Equal(t, []string{
		"unknown key in [[tasks]] #1: owner",
		"unknown key in [chart]: zoom",
		"unknown key in [colors]: background",
		"unknown key in [drag]: snap",
		"unknown key in [log]: format",
		"unknown section: server",
	}, cfg.Warnings)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "invalid drag mode", content: "[drag]\nmode = \"sideways\"\n", wantErr: domain.ErrInvalidDragMode},
		{name: "zero task height", content: "[chart]\ntask_height = 0\n", wantErr: domain.ErrInvalidLayout},
		{name: "negative hit slop", content: "[chart]\nhit_slop = -1\n", wantErr: domain.ErrInvalidLayout},
		{name: "bad color", content: "[colors]\nbar = \"blue\"\n", wantErr: domain.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			localPath := filepath.Join(t.TempDir(), "gantt.toml")
			writeFile(t, localPath, tt.content)

			cfg, err := NewLoaderWithGlobalDir(localPath, "").Load()

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	localPath := filepath.Join(t.TempDir(), "gantt.toml")
	writeFile(t, localPath, "[chart\n")

	_, err := NewLoaderWithGlobalDir(localPath, "").Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse "+localPath)
}

func TestLoader_Load_RenderedTemplate(t *testing.T) {
	// A file produced by `config init` loads back to the same values.
	cfg := domain.NewDefaultConfig()
	cfg.Chart.TaskHeight = 3
	cfg.Drag.Mode = domain.DragModeAbsolute
	localPath := filepath.Join(t.TempDir(), "gantt.toml")
	writeFile(t, localPath, domain.RenderConfigTemplate(cfg))

	loaded, err := NewLoaderWithGlobalDir(localPath, "").Load()

	require.NoError(t, err)
	assert.Empty(t, loaded.Warnings)
	assert.Equal(t, cfg.Chart, loaded.Chart)
	assert.Equal(t, cfg.Drag, loaded.Drag)
	assert.Equal(t, cfg.Colors, loaded.Colors)
}

func TestDefaultLogDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")

	assert.Equal(t, filepath.Join("/state", "gantt", "logs"), DefaultLogDir())
}

func TestDefaultGlobalConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/conf")

	assert.Equal(t, filepath.Join("/conf", "gantt"), defaultGlobalConfigDir())
}
