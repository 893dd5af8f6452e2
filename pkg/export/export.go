package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hummus-finance/toolchain/pkg/toolchain"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Options tune rendering.
type Options struct {
	// Redact replaces account private keys
	Redact bool
}

// ParseFormat accepts yaml, yml or json in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported format %q (want yaml or json)", s)
}

// FormatFromPath picks a format from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Marshal renders cfg in format.
func Marshal(cfg *toolchain.Config, format Format, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(cfg, opts)); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	switch format {
	case FormatYAML:
		return buf.Bytes(), nil
	case FormatJSON:
		var root yaml.Node
		if err := yaml.Unmarshal(buf.Bytes(), &root); err != nil {
			return nil, fmt.Errorf("convert to json: %w", err)
		}
		var raw bytes.Buffer
		if err := nodeJSON(&raw, &root); err != nil {
			return nil, fmt.Errorf("convert to json: %w", err)
		}
		var out bytes.Buffer
		if err := json.Indent(&out, raw.Bytes(), "", "  "); err != nil {
			return nil, fmt.Errorf("indent json: %w", err)
		}
		out.WriteByte('\n')
		return out.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// Encode writes cfg to w.
func Encode(w io.Writer, cfg *toolchain.Config, format Format, opts Options) error {
	data, err := Marshal(cfg, format, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile renders cfg to path, creating parent directories.
func WriteFile(path string, cfg *toolchain.Config, format Format, opts Options) error {
	data, err := Marshal(cfg, format, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
