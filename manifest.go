package logo

import (
	_ "embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
)

//go:embed manifest.toml
var manifestFile []byte

// Source is a raw vector file written next to the rasters.
type Source struct {
	Name    string  `toml:"name"`
	Variant Variant `toml:"variant"`
}

// Icon is a single raster output request.
type Icon struct {
	Name       string  `toml:"name"`
	Size       int     `toml:"size"`
	Variant    Variant `toml:"variant"`
	Background bool    `toml:"background"`
}

// Manifest lists every asset produced by a build.
type Manifest struct {
	Sources []Source `toml:"source"`
	Icons   []Icon   `toml:"icon"`
}

// DefaultManifest returns the embedded asset list.
func DefaultManifest() (*Manifest, error) {
	return ParseManifest(manifestFile)
}

// ParseManifest decodes and validates a TOML asset list.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// validate normalizes variants and rejects overlapping or empty outputs.
func (m *Manifest) validate() error {
	seen := make(map[string]bool)
	claim := func(name string) error {
		if name == "" {
			return fmt.Errorf("%w: asset without a name", ErrInvalidManifest)
		}
		clean := path.Clean(name)
		if seen[clean] {
			return fmt.Errorf("%w: duplicate output %q", ErrInvalidManifest, name)
		}
		seen[clean] = true
		return nil
	}

	for i := range m.Sources {
		s := &m.Sources[i]
		if err := claim(s.Name); err != nil {
			return err
		}
		v, err := ParseVariant(string(s.Variant))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidManifest, s.Name, err)
		}
		s.Variant = v
	}
	for i := range m.Icons {
		ic := &m.Icons[i]
		if err := claim(ic.Name); err != nil {
			return err
		}
		if ic.Size <= 0 {
			return fmt.Errorf("%w: %s: size %d", ErrInvalidManifest, ic.Name, ic.Size)
		}
		v, err := ParseVariant(string(ic.Variant))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidManifest, ic.Name, err)
		}
		ic.Variant = v
	}
	return nil
}
