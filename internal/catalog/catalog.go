// Package catalog loads the list of exercises a routine runs through.
package catalog

import (
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/akyairhashvil/morning-stretch/internal/models"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

//go:embed exercises.yaml
var defaultCatalog []byte

var (
	ErrEmpty           = errors.New("catalog: no exercises")
	ErrMissingID       = errors.New("catalog: exercise id is required")
	ErrDuplicateID     = errors.New("catalog: duplicate exercise id")
	ErrInvalidDuration = errors.New("catalog: exercise duration must be positive")
)

// Catalog is a validated exercise list together with the bytes it came from.
type Catalog struct {
	Exercises []models.Exercise
	raw       []byte
}

// Default returns the built-in routine.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalogue file. An empty path yields the built-in routine.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*Catalog, error) {
	var exercises []models.Exercise
	if err := yaml.Unmarshal(data, &exercises); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := Validate(exercises); err != nil {
		return nil, err
	}
	return &Catalog{Exercises: exercises, raw: data}, nil
}

func Validate(exercises []models.Exercise) error {
	if len(exercises) == 0 {
		return ErrEmpty
	}
	seen := make(map[string]bool, len(exercises))
	for i, ex := range exercises {
		if ex.ID == "" {
			return fmt.Errorf("exercise %d: %w", i+1, ErrMissingID)
		}
		if seen[ex.ID] {
			return fmt.Errorf("%s: %w", ex.ID, ErrDuplicateID)
		}
		seen[ex.ID] = true
		if ex.Duration <= 0 {
			return fmt.Errorf("%s: %w", ex.ID, ErrInvalidDuration)
		}
	}
	return nil
}

// Checksum fingerprints the catalogue source so history rows can tell which
// version of the routine was run.
func (c *Catalog) Checksum() string {
	sum := blake2b.Sum256(c.raw)
	return hex.EncodeToString(sum[:])
}
