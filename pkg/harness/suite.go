package harness

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DecodeInt  = "int"
	DecodeBool = "bool"
)

// Suite is a named list of decoding checks, stored as YAML.
type Suite struct {
	Name     string `yaml:"name"`
	MaxSteps uint64 `yaml:"max_steps,omitempty"`
	Memoize  bool   `yaml:"memoize,omitempty"`
	Cases    []Case `yaml:"cases"`
}

// Case is one labelled check. Expr is a structured term description
// (see Build); Want is an int or a bool depending on Decode.
type Case struct {
	Label  string `yaml:"label"`
	Decode string `yaml:"decode"`
	Expr   any    `yaml:"expr"`
	Want   any    `yaml:"want"`
}

// LoadSuite reads a suite file from disk.
func LoadSuite(path string) (*Suite, error) {
	if path == "" {
		return nil, fmt.Errorf("suite: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("suite: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("suite: open %s: %w", path, err)
	}
	defer file.Close()

	suite, err := ReadSuite(file)
	if err != nil {
		return nil, fmt.Errorf("suite: parse %s: %w", abs, err)
	}
	return suite, nil
}

// ReadSuite decodes and validates a suite. Unknown keys are rejected.
func ReadSuite(r io.Reader) (*Suite, error) {
	var suite Suite
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, err
	}
	suite.Name = strings.TrimSpace(suite.Name)
	if err := suite.Validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

// WriteSuite serialises suite to path, creating parent directories.
func WriteSuite(suite *Suite, path string) error {
	if suite == nil {
		return fmt.Errorf("suite: nil suite")
	}
	if err := suite.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(suite); err != nil {
		return fmt.Errorf("suite: marshal %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("suite: encoder close: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("suite: mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("suite: write %s: %w", path, err)
	}
	return nil
}

// Validate checks labels, decode kinds and the type of each expected value.
// It does not modify s.
func (s *Suite) Validate() error {
	for i, c := range s.Cases {
		if strings.TrimSpace(c.Label) == "" {
			return fmt.Errorf("suite: case %d: missing label", i)
		}
		if c.Expr == nil {
			return fmt.Errorf("suite: case %q: missing expr", c.Label)
		}
		switch c.Decode {
		case DecodeInt:
			if _, ok := c.Want.(int); !ok {
				return fmt.Errorf("suite: case %q: want must be an integer, got %v", c.Label, c.Want)
			}
		case DecodeBool:
			if _, ok := c.Want.(bool); !ok {
				return fmt.Errorf("suite: case %q: want must be a boolean, got %v", c.Label, c.Want)
			}
		default:
			return fmt.Errorf("suite: case %q: unknown decode %q", c.Label, c.Decode)
		}
	}
	return nil
}
