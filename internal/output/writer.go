package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/viteassets/internal/utils"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", name)
	}
}

// FormatFromPath picks the format matching a file extension
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Writer encodes results for the terminal or a file
type Writer struct {
	format Format
	force  bool
	dryRun bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Format Format
	// Force overwrites existing files
	Force  bool
	DryRun bool
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Format == "" {
		opts.Format = FormatJSON
	}

	return &Writer{
		format: opts.Format,
		force:  opts.Force,
		dryRun: opts.DryRun,
	}
}

// Format returns the writer's encoding
func (w *Writer) Format() Format {
	return w.format
}

// Marshal encodes v in the writer's format
func (w *Writer) Marshal(v any) ([]byte, error) {
	switch w.format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// Encode writes v to out
func (w *Writer) Encode(out io.Writer, v any) error {
	data, err := w.Marshal(v)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// WriteFile saves v to path. Existing files are kept unless Force is set.
func (w *Writer) WriteFile(path string, v any) error {
	if !w.force {
		if _, err := os.Stat(path); err == nil {
			// File exists, skip
			return nil
		}
	}

	data, err := w.Marshal(v)
	if err != nil {
		return err
	}

	// Dry run - just return
	if w.dryRun {
		return nil
	}

	if err := utils.EnsureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
