// Package export turns finalized wizard results into files on disk.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/user/pwa-builder/internal/builder"
	"github.com/user/pwa-builder/internal/errors"
)

// Format selects the output encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// Formats lists every supported output format
var Formats = []Format{FormatYAML, FormatJSON, FormatHTML}

const yamlHeader = `# PWA configuration generated by pwa-builder
# Feed this file to your build integration or edit it by hand.

`

// FileGenerator writes one file per result into Dir
type FileGenerator struct {
	Dir    string
	Format Format

	html *HTMLRenderer
}

// NewFileGenerator validates the format and prepares any renderer it needs
func NewFileGenerator(dir string, format Format) (*FileGenerator, error) {
	if dir == "" {
		dir = "."
	}

	g := &FileGenerator{Dir: dir, Format: format}
	switch format {
	case FormatYAML, FormatJSON:
	case FormatHTML:
		g.html = NewHTMLRenderer()
	default:
		return nil, errors.NewInvalidSettingError("wizard.format", string(format), "must be yaml, json or html")
	}
	return g, nil
}

// FileName returns the file name used for a result
func (g *FileGenerator) FileName(result builder.Result) string {
	name := slug.Make(result.State.Title)
	if name == "" {
		name = "pwa"
	}
	return fmt.Sprintf("%s.pwa.%s", name, g.Format)
}

// Generate writes the result and returns the written path
func (g *FileGenerator) Generate(ctx context.Context, result builder.Result) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(g.Dir, g.FileName(result))

	data, err := g.encode(NewRecord(result))
	if err != nil {
		return "", errors.NewGenerateError(path, err)
	}

	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return "", errors.NewGenerateError(path, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", errors.NewGenerateError(path, err)
	}
	return path, nil
}

func (g *FileGenerator) encode(rec Record) ([]byte, error) {
	switch g.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatHTML:
		return g.html.Render(rec)
	default:
		data, err := yaml.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return append([]byte(yamlHeader), data...), nil
	}
}
