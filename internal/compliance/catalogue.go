package compliance

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/spf13/viper"
)

//go:embed pillars.yaml
var defaultCatalogue []byte

// DefaultCatalogue returns the embedded pillar catalogue.
func DefaultCatalogue() Catalogue {
	cat, err := LoadCatalogue("")
	if err != nil {
		panic(fmt.Sprintf("compliance: embedded catalogue: %v", err))
	}
	return cat
}

// LoadCatalogue reads the catalogue from path, or the embedded default when path is empty.
func LoadCatalogue(path string) (Catalogue, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path == "" {
		if err := v.ReadConfig(bytes.NewReader(defaultCatalogue)); err != nil {
			return Catalogue{}, fmt.Errorf("failed to read catalogue: %w", err)
		}
	} else {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Catalogue{}, fmt.Errorf("failed to read catalogue %s: %w", path, err)
		}
	}

	var cat Catalogue
	if err := v.Unmarshal(&cat); err != nil {
		return Catalogue{}, fmt.Errorf("failed to unmarshal catalogue: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return Catalogue{}, err
	}
	return cat, nil
}

// Validate checks the catalogue holds exactly PillarCount pillars with unique keys.
func (c Catalogue) Validate() error {
	if c.Version < 1 {
		return fmt.Errorf("%w: version must be >= 1", ErrInvalidCatalogue)
	}
	if len(c.Pillars) != PillarCount {
		return fmt.Errorf("%w: want %d pillars, got %d", ErrInvalidCatalogue, PillarCount, len(c.Pillars))
	}
	seen := make(map[string]struct{}, len(c.Pillars))
	for i, p := range c.Pillars {
		if p.Key == "" || p.Label == "" {
			return fmt.Errorf("%w: pillar %d has empty key or label", ErrInvalidCatalogue, i)
		}
		if _, ok := seen[p.Key]; ok {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidCatalogue, p.Key)
		}
		seen[p.Key] = struct{}{}
	}
	return nil
}
