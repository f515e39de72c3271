package bpextract

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/bacteria-search/bpextract/pkg/bpextract/refdata"
	"gopkg.in/yaml.v3"
)

// FileConfig models an optional bpextract.yaml file. Unset keys keep their
// defaults. Sheets and antimicrobials are YAML sequences so their order is
// preserved.
type FileConfig struct {
	Input          string               `yaml:"input,omitempty"`
	Output         string               `yaml:"output,omitempty"`
	Guideline      string               `yaml:"guideline,omitempty"`
	Source         string               `yaml:"source,omitempty"`
	HeaderScanRows int                  `yaml:"header_scan_rows,omitempty"`
	Sheets         []refdata.SheetGroup `yaml:"sheets,omitempty"`
	Antimicrobials []refdata.CodeEntry  `yaml:"antimicrobials,omitempty"`
	LogLevel       string               `yaml:"log_level,omitempty"`
	LogFormat      string               `yaml:"log_format,omitempty"`
}

// ParseConfigYAML decodes and validates a config payload.
func ParseConfigYAML(data []byte) (FileConfig, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return FileConfig{}, fmt.Errorf("config: payload is empty")
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return FileConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the table entries and numeric limits.
func (c FileConfig) Validate() error {
	if c.HeaderScanRows < 0 {
		return fmt.Errorf("config: header_scan_rows must not be negative")
	}
	for i, sg := range c.Sheets {
		if sg.Sheet == "" || strings.TrimSpace(sg.Group) == "" {
			return fmt.Errorf("config: sheets[%d]: sheet and group are required", i)
		}
	}
	for i, e := range c.Antimicrobials {
		if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Code) == "" {
			return fmt.Errorf("config: antimicrobials[%d]: name and code are required", i)
		}
		if e.Name != strings.ToLower(e.Name) {
			return fmt.Errorf("config: antimicrobials[%d]: name %q must be lower case", i, e.Name)
		}
	}
	return nil
}

// Apply overlays the file settings onto opts.
func (c FileConfig) Apply(opts Options) Options {
	if c.Guideline != "" {
		opts.Guideline = c.Guideline
	}
	if c.Source != "" {
		opts.Source = c.Source
	}
	if c.HeaderScanRows > 0 {
		opts.HeaderScanRows = c.HeaderScanRows
	}
	if len(c.Sheets) > 0 {
		opts.Sheets = refdata.SheetMapping(c.Sheets)
	}
	if len(c.Antimicrobials) > 0 {
		opts.Codes = refdata.CodeTable(c.Antimicrobials)
	}
	return opts
}
