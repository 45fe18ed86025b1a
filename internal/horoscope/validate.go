package horoscope

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/cosmicweather/internal/zodiac"
)

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}

// Validate checks that the template tables cover every sign, every ordered
// element pair and every mood with non-empty text.
func Validate() error {
	var errs []error

	for _, s := range zodiac.All() {
		a, ok := archetypes[s]
		if !ok {
			errs = append(errs, fmt.Errorf("missing archetype for %s", s))
			continue
		}
		if a.EnergyStyle == "" || a.RelationalTrait == "" || a.CommunicationStyle == "" {
			errs = append(errs, fmt.Errorf("incomplete archetype for %s", s))
		}
	}

	for _, from := range zodiac.Elements {
		for _, to := range zodiac.Elements {
			i, ok := interactions[elementPair{from, to}]
			if !ok {
				errs = append(errs, fmt.Errorf("missing interaction %s -> %s", from, to))
				continue
			}
			if strings.TrimSpace(i.Climate) == "" || strings.TrimSpace(i.Dynamic) == "" {
				errs = append(errs, fmt.Errorf("incomplete interaction %s -> %s", from, to))
			}
		}
	}

	seen := make(map[string]bool, len(influences))
	for _, in := range influences {
		if seen[in.Mood] {
			errs = append(errs, fmt.Errorf("duplicate mood %q", in.Mood))
		}
		seen[in.Mood] = true
		if in.EnergyDescription == "" || in.ActivityType == "" {
			errs = append(errs, fmt.Errorf("incomplete influence for mood %q", in.Mood))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("horoscope templates: %w", errors.Join(errs...))
	}
	return nil
}
