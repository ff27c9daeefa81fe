// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/gantt/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localPath     string // Path to the local config file (e.g. ./gantt.toml)
	globalConfDir string // Path to global config directory (e.g., ~/.config/gantt)
}

// NewLoader creates a new Loader.
func NewLoader(localPath string) *Loader {
	return &Loader{
		localPath:     localPath,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(localPath, globalConfDir string) *Loader {
	return &Loader{
		localPath:     localPath,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// DefaultLogDir returns the default log directory under XDG_STATE_HOME.
func DefaultLogDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.StateLogDir(stateHome)
}

// Load returns the merged configuration: default <- global <- local.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if err := l.applyGlobal(cfg); err != nil {
		return nil, err
	}
	if l.localPath != "" {
		if err := l.applyFile(cfg, l.localPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	sort.Strings(cfg.Warnings)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadGlobal returns the defaults merged with the global configuration only.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()
	if err := l.applyGlobal(cfg); err != nil {
		return nil, err
	}
	sort.Strings(cfg.Warnings)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) applyGlobal(cfg *domain.Config) error {
	if l.globalConfDir == "" {
		return nil
	}
	err := l.applyFile(cfg, filepath.Join(l.globalConfDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// applyFile reads a TOML file and overlays the keys it sets onto cfg.
func (l *Loader) applyFile(cfg *domain.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	applyRaw(cfg, raw)
	return nil
}

// applyRaw overlays the raw map onto cfg and collects warnings for unknown keys.
func applyRaw(cfg *domain.Config, raw map[string]any) {
	for section, value := range raw {
		switch section {
		case "chart":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "top_margin":
						setFloat(&cfg.Chart.TopMargin, v)
					case "task_height":
						setFloat(&cfg.Chart.TaskHeight, v)
					case "handle_width":
						setFloat(&cfg.Chart.HandleWidth, v)
					case "label_y":
						setFloat(&cfg.Chart.LabelY, v)
					case "label_pad_x":
						setFloat(&cfg.Chart.LabelPadX, v)
					case "min_label_spacing":
						setFloat(&cfg.Chart.MinLabelSpacing, v)
					case "hit_slop":
						setFloat(&cfg.Chart.HitSlop, v)
					case "frame_interval_ms":
						if i, ok := v.(int64); ok {
							cfg.Chart.FrameIntervalMS = int(i)
						}
					default:
						cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [chart]: %s", k))
					}
				}
			}
		case "drag":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "mode":
						if s, ok := v.(string); ok {
							cfg.Drag.Mode = domain.DragMode(s)
						}
					default:
						cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [drag]: %s", k))
					}
				}
			}
		case "colors":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					s, _ := v.(string)
					switch k {
					case "bar":
						cfg.Colors.Bar = domain.Color(s)
					case "handle":
						cfg.Colors.Handle = domain.Color(s)
					case "text":
						cfg.Colors.Text = domain.Color(s)
					case "grid":
						cfg.Colors.Grid = domain.Color(s)
					case "label":
						cfg.Colors.Label = domain.Color(s)
					default:
						cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [colors]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							cfg.Log.Level = s
						}
					case "dir":
						if s, ok := v.(string); ok {
							cfg.Log.Dir = s
						}
					default:
						cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		case "tasks":
			if list, ok := value.([]any); ok {
				cfg.Tasks = parseTaskSeeds(list, &cfg.Warnings)
			}
		default:
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}
}

// parseTaskSeeds parses the [[tasks]] array. A file that sets it replaces
// any seeds from earlier layers.
func parseTaskSeeds(list []any, warnings *[]string) []domain.TaskSeed {
	seeds := make([]domain.TaskSeed, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var seed domain.TaskSeed
		for k, v := range m {
			switch k {
			case "name":
				seed.Name, _ = v.(string)
			case "start":
				seed.Start = tomlDate(v)
			case "end":
				seed.End = tomlDate(v)
			default:
				*warnings = append(*warnings, fmt.Sprintf("unknown key in [[tasks]] #%d: %s", i+1, k))
			}
		}
		seeds = append(seeds, seed)
	}
	return seeds
}

// tomlDate accepts both quoted strings and TOML local dates.
func tomlDate(v any) string {
	switch d := v.(type) {
	case string:
		return d
	case toml.LocalDate:
		return d.String()
	}
	return ""
}

func setFloat(dst *float64, v any) {
	switch n := v.(type) {
	case int64:
		*dst = float64(n)
	case float64:
		*dst = n
	}
}
