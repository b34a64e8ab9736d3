package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a network document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat maps a user-supplied name ("yaml", "yml", "toml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// DecodeNetwork parses a whole network document.
func DecodeNetwork(r io.Reader, f Format) (*Network, error) {
	var n Network
	switch f {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&n); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("loader: parsing YAML: %w", err)
		}
	case FormatTOML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("loader: reading TOML: %w", err)
		}
		if err := toml.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("loader: parsing TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return &n, nil
}

// EncodeNetwork writes n as a document in format f.
func EncodeNetwork(w io.Writer, n *Network, f Format) error {
	if n == nil {
		return ErrNilNetwork
	}
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(n); err != nil {
			return fmt.Errorf("loader: encoding YAML: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		data, err := toml.Marshal(n)
		if err != nil {
			return fmt.Errorf("loader: encoding TOML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// LoadDocument reads a network document, choosing the format by extension.
func LoadDocument(path string) (*Network, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	return DecodeNetwork(bytes.NewReader(data), f)
}

// SaveDocument writes n to path, choosing the format by extension and
// creating parent directories as needed.
func SaveDocument(path string, n *Network) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("loader: creating directory for %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := EncodeNetwork(&buf, n, f); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("loader: writing %s: %w", path, err)
	}
	return nil
}
