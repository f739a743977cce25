// Package export writes one-way snapshots of the catalog to
// timestamped files. An export never mutates the catalog; it is the
// only way data survives a session.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/bookshelf/internal/catalog"
)

// Supported export encodings. Both are human-readable text with
// 2-space indentation; the encoding also becomes the file extension.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats defines the allowed export encodings.
var ValidFormats = []string{FormatJSON, FormatYAML}

// record is the wire form of a catalog record. The key names are part
// of the export format and match the user-facing field names.
type record struct {
	Book   string `json:"Book" yaml:"Book"`
	Author string `json:"Author" yaml:"Author"`
	Genre  string `json:"Genre" yaml:"Genre"`
}

// Writer writes catalog snapshots to timestamped files under Dir.
//
// Now supplies the timestamp embedded in file names and defaults to
// time.Now; tests inject a fixed clock for deterministic names.
type Writer struct {
	Dir    string
	Format string
	Now    func() time.Time
}

// Write serializes records, in order, to a new file named
// books_export_<YYYYMMDD_HHMMSS>.<ext> and returns its path.
// On any encode or I/O failure the file system may hold a partial
// file but the in-memory catalog is untouched.
func (w *Writer) Write(records []catalog.Record) (string, error) {
	now := w.Now
	if now == nil {
		now = time.Now
	}
	format := w.Format
	if format == "" {
		format = FormatJSON
	}

	data, err := encode(records, format)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("books_export_%s.%s", now().Format("20060102_150405"), format)
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

func encode(records []catalog.Record, format string) ([]byte, error) {
	wire := make([]record, len(records))
	for i, r := range records {
		wire[i] = record{Book: r.Title, Author: r.Author, Genre: r.Genre}
	}

	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(wire); err != nil {
			return nil, fmt.Errorf("encode json export: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(wire); err != nil {
			return nil, fmt.Errorf("encode yaml export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml export: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
	return buf.Bytes(), nil
}

// Read loads a previously written export. The encoding is picked from
// the file extension.
func Read(path string) ([]catalog.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	var wire []record
	switch ext := strings.TrimPrefix(filepath.Ext(path), "."); ext {
	case FormatJSON:
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("decode json export: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("decode yaml export: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown export extension %q", ext)
	}

	records := make([]catalog.Record, len(wire))
	for i, r := range wire {
		records[i] = catalog.Record{Title: r.Book, Author: r.Author, Genre: r.Genre}
	}
	return records, nil
}
