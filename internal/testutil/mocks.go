// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"

	"github.com/runoshun/gantt/internal/domain"
)

// Ensure mocks implement their ports.
var (
	_ domain.Logger        = (*MockLogger)(nil)
	_ domain.Surface       = (*RecordingSurface)(nil)
	_ domain.ConfigManager = (*MockConfigManager)(nil)
)

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitLocalErr     error
	InitGlobalErr    error
	LocalConfigInfo  domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetLocalConfigInfo returns the configured local info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfigInfo
}

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitLocalConfig records the call and returns InitLocalErr.
func (m *MockConfigManager) InitLocalConfig(_ *domain.Config) error {
	m.InitLocalCalled = true
	return m.InitLocalErr
}

// InitGlobalConfig records the call and returns InitGlobalErr.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// LogEntry is one recorded log call.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Messages returns the recorded messages for a category.
func (m *MockLogger) Messages(category string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.Entries {
		if e.Category == category {
			out = append(out, e.Msg)
		}
	}
	return out
}

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error message.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// Op is one recorded surface call, e.g. "fillRect(0,0,10,30)".
type Op struct {
	Name  string
	Color domain.Color // Active fill or stroke color for drawing ops
	Text  string       // FillText content
	Args  []float64
}

// String formats the op without its color.
func (o Op) String() string {
	switch o.Name {
	case "fillText":
		return fmt.Sprintf("fillText(%q,%g,%g)", o.Text, o.Args[0], o.Args[1])
	default:
		s := o.Name + "("
		for i, a := range o.Args {
			if i > 0 {
				s += ","
			}
			s += fmt.Sprintf("%g", a)
		}
		return s + ")"
	}
}

// RecordingSurface records every drawing call in order.
type RecordingSurface struct {
	Ops    []Op
	fill   domain.Color
	stroke domain.Color
	W, H   float64
}

// NewRecordingSurface creates a recorder of the given size.
func NewRecordingSurface(w, h float64) *RecordingSurface {
	return &RecordingSurface{W: w, H: h}
}

func (r *RecordingSurface) Width() float64  { return r.W }
func (r *RecordingSurface) Height() float64 { return r.H }

func (r *RecordingSurface) SetFillColor(c domain.Color)   { r.fill = c }
func (r *RecordingSurface) SetStrokeColor(c domain.Color) { r.stroke = c }

func (r *RecordingSurface) ClearRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Name: "clearRect", Args: []float64{x, y, w, h}})
}

func (r *RecordingSurface) FillRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Name: "fillRect", Color: r.fill, Args: []float64{x, y, w, h}})
}

func (r *RecordingSurface) BeginPath() {
	r.Ops = append(r.Ops, Op{Name: "beginPath"})
}

func (r *RecordingSurface) MoveTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Name: "moveTo", Args: []float64{x, y}})
}

func (r *RecordingSurface) LineTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Name: "lineTo", Args: []float64{x, y}})
}

func (r *RecordingSurface) Stroke() {
	r.Ops = append(r.Ops, Op{Name: "stroke", Color: r.stroke})
}

func (r *RecordingSurface) FillText(text string, x, y float64) {
	r.Ops = append(r.Ops, Op{Name: "fillText", Color: r.fill, Text: text, Args: []float64{x, y}})
}

// Filter returns the recorded ops with the given name.
func (r *RecordingSurface) Filter(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded ops.
func (r *RecordingSurface) Reset() {
	r.Ops = nil
}
