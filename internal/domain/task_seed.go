package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// taskFile is the YAML layout of a task file.
type taskFile struct {
	Tasks []TaskSeed `yaml:"tasks"`
}

// ParseTaskSeeds parses a YAML task file.
//
// Format:
//
//	tasks:
//	  - name: Design
//	    start: 2023-04-01
//	    end: 2023-04-10
//	  - name: Build
//	    start: 2023-04-05
//	    end: 2023-04-15
func ParseTaskSeeds(content []byte) ([]TaskSeed, error) {
	if strings.TrimSpace(string(content)) == "" {
		return nil, ErrEmptyFile
	}

	var f taskFile
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if len(f.Tasks) == 0 {
		return nil, ErrNoTasksInFile
	}
	return f.Tasks, nil
}

// Build validates the seed and creates a task from it.
func (s TaskSeed) Build() (*Task, error) {
	start, err := ParseDate(strings.TrimSpace(s.Start))
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	end, err := ParseDate(strings.TrimSpace(s.End))
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}
	return NewTask(s.Name, start, end)
}
