/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/borgpod/errors"
)

// defaultImportPath is the import path emitted for the borgpod package unless
// the manifest overrides it.
const defaultImportPath = "github.com/suparena/borgpod"

// Manifest describes the classes of one package that participate in pods.
type Manifest struct {
	// Package is the Go package name of the generated file.
	Package string `yaml:"package"`
	// Import optionally overrides the borgpod import path (useful for forks).
	Import string `yaml:"import,omitempty"`
	// Classes lists the participating classes to register.
	Classes []ClassSpec `yaml:"classes"`
}

// ClassSpec describes a single participating class.
type ClassSpec struct {
	// Type is the Go type name of the class within the target package.
	Type string `yaml:"type"`
	// Name optionally registers the class in the name registry, enabling
	// construction through NewByName. Empty means no name registration.
	Name string `yaml:"name,omitempty"`
	// Resist marks the class as an ordinary, independent factory.
	Resist bool `yaml:"resist,omitempty"`
}

// LoadManifest reads and validates a YAML class manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest for the fields generation requires.
func (m *Manifest) Validate() error {
	if m.Package == "" {
		return errors.NewValidationError("package", "must not be empty")
	}
	if len(m.Classes) == 0 {
		return errors.NewValidationError("classes", "at least one class is required")
	}
	seen := make(map[string]bool, len(m.Classes))
	for i, c := range m.Classes {
		if c.Type == "" {
			return errors.NewValidationError(fmt.Sprintf("classes[%d].type", i), "must not be empty")
		}
		if c.Name != "" && seen[c.Name] {
			return errors.NewValidationError(fmt.Sprintf("classes[%d].name", i), fmt.Sprintf("duplicate name %q", c.Name))
		}
		if c.Name != "" {
			seen[c.Name] = true
		}
	}
	return nil
}

// GenerateSource renders the registration file for a manifest and formats it
// with go/format.
func GenerateSource(m *Manifest) ([]byte, error) {
	importPath := m.Import
	if importPath == "" {
		importPath = defaultImportPath
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by podgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", m.Package)
	fmt.Fprintf(&buf, "import (\n\tborgpod %q\n)\n\n", importPath)
	fmt.Fprintf(&buf, "func init() {\n")
	for _, c := range m.Classes {
		call := "Assimilate"
		if c.Resist {
			call = "Resist"
		}
		if c.Name != "" {
			fmt.Fprintf(&buf, "\tborgpod.%s[%s](borgpod.WithName(%q))\n", call, c.Type, c.Name)
		} else {
			fmt.Fprintf(&buf, "\tborgpod.%s[%s]()\n", call, c.Type)
		}
	}
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

// Generate reads the manifest at manifestPath and writes the registration
// file to outputPath.
func Generate(manifestPath, outputPath string) error {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	src, err := GenerateSource(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, src, 0o644); err != nil {
		return fmt.Errorf("write generated file: %w", err)
	}
	return nil
}

// Main is the entry point used by cmd/podgen. Empty paths fall back to the
// BORGPOD_MANIFEST and BORGPOD_OUTPUT environment variables, with a .env file
// loaded first when present.
func Main(manifestPath, outputPath string) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	if manifestPath == "" {
		manifestPath = os.Getenv("BORGPOD_MANIFEST")
	}
	if manifestPath == "" {
		manifestPath = "borgpod.yaml"
	}
	if outputPath == "" {
		outputPath = os.Getenv("BORGPOD_OUTPUT")
	}
	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(manifestPath), "borgpod_gen.go")
	}

	if err := Generate(manifestPath, outputPath); err != nil {
		log.Fatalf("podgen: %v", err)
	}
	fmt.Printf("Generated class registrations from %s to %s\n", manifestPath, outputPath)
}
