package domain

// TaskRepository holds the ordered task sequence for a session.
// Insertion order is display row order.
type TaskRepository interface {
	// List returns the tasks in row order. The returned tasks are live:
	// mutating them mutates the sequence.
	List() []*Task

	// Append adds a task as the last row.
	Append(task *Task)

	// Len returns the number of tasks.
	Len() int
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string // Absolute or working-directory relative path
	Content string // File content (empty if not found)
	Exists  bool   // Whether the file exists
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo
	// InitLocalConfig creates the local config file from the template.
	InitLocalConfig(cfg *Config) error
	// InitGlobalConfig creates the global config file from the template.
	InitGlobalConfig(cfg *Config) error
}

// Logger provides logging functionality.
// Category groups related messages (e.g. "task", "drag", "config").
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, string)  {}
func (NopLogger) Debug(string, string) {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
