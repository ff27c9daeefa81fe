package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Tasks    []TaskSeed  `toml:"tasks"`
	Warnings []string    `toml:"-"`
	Colors   Palette     `toml:"colors"`
	Log      LogConfig   `toml:"log"`
	Drag     DragConfig  `toml:"drag"`
	Chart    ChartConfig `toml:"chart"`
}

// ChartConfig holds layout settings from the [chart] section.
// All sizes are in surface units (terminal cells in the TUI).
type ChartConfig struct {
	TopMargin       float64 `toml:"top_margin"`        // Space above the first row
	TaskHeight      float64 `toml:"task_height"`       // Row band height
	HandleWidth     float64 `toml:"handle_width"`      // Width of each drag handle
	LabelY          float64 `toml:"label_y"`           // Baseline of date labels
	LabelPadX       float64 `toml:"label_pad_x"`       // Gap between a line/bar edge and its label
	MinLabelSpacing float64 `toml:"min_label_spacing"` // 0 labels every day
	HitSlop         float64 `toml:"hit_slop"`          // Extra pointer tolerance around handles
	FrameIntervalMS int     `toml:"frame_interval_ms"` // Redraw coalescing window
}

// FrameInterval returns the redraw coalescing window as a duration.
func (c ChartConfig) FrameInterval() time.Duration {
	if c.FrameIntervalMS <= 0 {
		return time.Duration(DefaultFrameIntervalMS) * time.Millisecond
	}
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// DragConfig holds pointer-drag settings from the [drag] section.
type DragConfig struct {
	Mode DragMode `toml:"mode"` // "delta" (default) or "absolute"
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
	Dir   string `toml:"dir"`   // Log directory (empty = default state dir)
}

// TaskSeed is a task definition read from config or a task file.
type TaskSeed struct {
	Name  string `toml:"name" yaml:"name"`
	Start string `toml:"start" yaml:"start"`
	End   string `toml:"end" yaml:"end"`
}

// Default configuration values.
const (
	DefaultLogLevel        = "info"
	DefaultTopMargin       = 1
	DefaultTaskHeight      = 2
	DefaultHandleWidth     = 1
	DefaultLabelY          = 0
	DefaultLabelPadX       = 1
	DefaultMinLabelSpacing = 1
	DefaultHitSlop         = 0.5
	DefaultFrameIntervalMS = 16
)

// Configuration file names.
const (
	AppDirName      = "gantt"       // Directory name under XDG config/state homes
	ConfigFileName  = "config.toml" // Global config file name
	LocalConfigName = "gantt.toml"  // Config file name in the working directory
	LogFileName     = "gantt.log"
)

// GlobalConfigDir returns the global config directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// StateLogDir returns the default log directory under the state home.
func StateLogDir(stateHome string) string {
	return filepath.Join(stateHome, AppDirName, "logs")
}

// LogPath returns the log file path inside a log directory.
func LogPath(logDir string) string {
	return filepath.Join(logDir, LogFileName)
}

// DefaultSeeds returns the tasks shown when nothing else is configured.
func DefaultSeeds() []TaskSeed {
	return []TaskSeed{
		{Name: "Task 1", Start: "2023-04-01", End: "2023-04-10"},
		{Name: "Task 2", Start: "2023-04-05", End: "2023-04-15"},
		{Name: "Task 3", Start: "2023-04-10", End: "2023-04-20"},
	}
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Chart: ChartConfig{
			TopMargin:       DefaultTopMargin,
			TaskHeight:      DefaultTaskHeight,
			HandleWidth:     DefaultHandleWidth,
			LabelY:          DefaultLabelY,
			LabelPadX:       DefaultLabelPadX,
			MinLabelSpacing: DefaultMinLabelSpacing,
			HitSlop:         DefaultHitSlop,
			FrameIntervalMS: DefaultFrameIntervalMS,
		},
		Drag:   DragConfig{Mode: DragModeDelta},
		Colors: DefaultPalette(),
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Tasks: DefaultSeeds(),
	}
}

// Validate checks values that cannot be repaired by defaults.
func (c *Config) Validate() error {
	if c.Chart.TaskHeight <= 0 || c.Chart.HandleWidth < 0 || c.Chart.TopMargin < 0 || c.Chart.HitSlop < 0 {
		return fmt.Errorf("%w: task_height=%v handle_width=%v", ErrInvalidLayout, c.Chart.TaskHeight, c.Chart.HandleWidth)
	}
	if !c.Drag.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDragMode, c.Drag.Mode)
	}
	return c.Colors.Validate()
}

// templateData holds all data for rendering the config template.
type templateData struct {
	LogLevel string
	DragMode DragMode
	Colors   Palette
	Chart    ChartConfig
}

// RenderConfigTemplate renders a commented config template from the given Config.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		LogLevel: cfg.Log.Level,
		DragMode: cfg.Drag.Mode,
		Colors:   cfg.Colors,
		Chart:    cfg.Chart,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
