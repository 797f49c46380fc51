package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	fancyerrors "github.com/alexisbeaulieu97/fancyui/pkg/errors"
)

// Format identifies a schema document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatForPath picks the document format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported schema file extension %q", filepath.Ext(path))
	}
}

// ParseDocument loads a schema document from disk, validates it, and returns the resulting model.
func ParseDocument(path string) (*Document, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, fancyerrors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fancyerrors.NewParseError(path, 0, err)
	}

	return Parse(path, format, data)
}

// Parse decodes data in the given format and validates it. Unknown fields
// are rejected. path is only used for error reporting.
func Parse(path string, format Format, data []byte) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&doc); err != nil {
			return nil, fancyerrors.NewParseError(path, extractLine(err), err)
		}
	case FormatTOML:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&doc); err != nil {
			return nil, fancyerrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return nil, fancyerrors.NewParseError(path, 0, fmt.Errorf("unsupported format %q", format))
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
