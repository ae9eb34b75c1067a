package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

// ReportFormat selects the machine-readable encoding of an AnalysisResult.
type ReportFormat string

// Supported report formats.
const (
	FormatJSON ReportFormat = "json"
	FormatYAML ReportFormat = "yaml"
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON for everything else.
func FormatFromPath(path m.Path) ReportFormat {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// EncodeReport writes result to w in the requested format.
func EncodeReport(w io.Writer, format ReportFormat, result m.AnalysisResult) error {
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}

		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// ReportStore persists coverage results outside the terminal output.
type ReportStore interface {
	SaveReport(path m.Path, result m.AnalysisResult) error
}

// LocalReportStore writes reports to the host filesystem.
type LocalReportStore struct{}

// NewReportStore returns a ReportStore writing to local files.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport encodes result according to the file extension and writes it,
// creating parent directories as needed. Existing reports are replaced.
func (s *LocalReportStore) SaveReport(path m.Path, result m.AnalysisResult) error {
	var buf bytes.Buffer
	if err := EncodeReport(&buf, FormatFromPath(path), result); err != nil {
		return err
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	if err := os.WriteFile(string(path), buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
