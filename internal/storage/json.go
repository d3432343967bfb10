package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"testconv/internal/domain"
)

// ErrNoReport is returned by Load when a check has not saved a report yet
var ErrNoReport = errors.New("no saved report")

var moduleFileName = strings.NewReplacer("/", "_", `\`, "_", ":", "_")

// Path returns the file a module's report of a check is stored in.
func (s *JSONStorage) Path(check, module string) string {
	name := check
	if module != "" {
		name += "-" + moduleFileName.Replace(module)
	}
	p := filepath.Join(s.dir, name+"-report.json")
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// Save writes the report, replacing the previous report of the same check and module.
func (s *JSONStorage) Save(report *domain.CheckReport) error {
	if report.Check == "" {
		return errors.New("report has no check name")
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := s.Path(report.Check, report.Module)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads the last saved report of a check for a module.
func (s *JSONStorage) Load(check, module string) (*domain.CheckReport, error) {
	data, err := os.ReadFile(s.Path(check, module))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s check of module %s: %w", check, module, ErrNoReport)
		}
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var report domain.CheckReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}
