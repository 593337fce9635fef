package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed seed/characters.yaml
var seedFS embed.FS

const seedPath = "seed/characters.yaml"

type document struct {
	Characters []Character `yaml:"characters"`
}

// Decode reads a YAML roster document of the form `characters: [...]`.
// Unknown fields are rejected so typos in content files surface at load time.
func Decode(r io.Reader) ([]Character, error) {
	if r == nil {
		return nil, errors.New("catalog reader is required")
	}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Character{}, nil
		}
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}
	if doc.Characters == nil {
		return []Character{}, nil
	}
	return doc.Characters, nil
}

// Encode writes characters as a YAML roster document.
func Encode(w io.Writer, characters []Character) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(document{Characters: characters}); err != nil {
		return fmt.Errorf("encode catalog yaml: %w", err)
	}
	return encoder.Close()
}

// Load decodes and validates a YAML roster.
func Load(r io.Reader) (*Catalog, error) {
	characters, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return New(characters)
}

// Seed returns the roster embedded in the binary.
func Seed() (*Catalog, error) {
	data, err := seedFS.ReadFile(seedPath)
	if err != nil {
		return nil, fmt.Errorf("read seed catalog: %w", err)
	}
	c, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load seed catalog: %w", err)
	}
	return c, nil
}
