// Package scenarios loads the weather scenarios used to seed the store.
package scenarios

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lox/cosmicweather/internal/horoscope"
	"github.com/lox/cosmicweather/internal/models"
)

//go:embed default.yaml
var defaultYAML []byte

type file struct {
	Scenarios []models.Weather `yaml:"scenarios"`
}

// Default returns the built-in scenario set.
func Default() ([]models.Weather, error) {
	ws, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		return nil, fmt.Errorf("default scenarios: %w", err)
	}
	return ws, nil
}

// Load parses a YAML scenario file with a top-level "scenarios" list.
func Load(r io.Reader) ([]models.Weather, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no scenarios defined")
		}
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}
	if err := Validate(f.Scenarios); err != nil {
		return nil, err
	}
	return f.Scenarios, nil
}

// Validate rejects empty sets, non-positive or duplicate ids, and records
// missing a condition or mood. Moods the horoscope engine does not know are
// accepted with a warning.
func Validate(ws []models.Weather) error {
	if len(ws) == 0 {
		return errors.New("no scenarios defined")
	}

	seen := make(map[int]bool, len(ws))
	for i, w := range ws {
		if w.ID <= 0 {
			return fmt.Errorf("scenario %d: id must be positive, got %d", i, w.ID)
		}
		if seen[w.ID] {
			return fmt.Errorf("scenario %d: duplicate id %d", i, w.ID)
		}
		seen[w.ID] = true

		if strings.TrimSpace(w.Condition) == "" {
			return fmt.Errorf("scenario %d: condition is required", w.ID)
		}
		if strings.TrimSpace(w.Mood) == "" {
			return fmt.Errorf("scenario %d: mood is required", w.ID)
		}
		if _, ok := horoscope.ResolveInfluence(w.Mood); !ok {
			log.Printf("scenarios: %d (%s) has unknown mood %q, readings will use default phrasing", w.ID, w.Condition, w.Mood)
		}
	}
	return nil
}
