package horoscope

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/lox/cosmicweather/internal/zodiac"
)

// Compatibility is the weather-independent part of a reading.
type Compatibility struct {
	Climate     string
	Description string
}

// ResolveCompatibility composes the base climate and compatibility
// description for an ordered sign pair. Every one of the 144 ordered pairs
// resolves; the tables are checked for completeness at init.
func ResolveCompatibility(sign1, sign2 zodiac.Sign) Compatibility {
	a1 := mustArchetype(sign1)
	a2 := mustArchetype(sign2)
	inter := mustInteraction(sign1.Element(), sign2.Element())

	var desc string
	switch {
	case sign1 == sign2:
		desc = fmt.Sprintf("Mirror souls with %s energy and %s approach. %s",
			a1.EnergyStyle, a1.RelationalTrait, inter.Dynamic)
	case sign1.Element() == sign2.Element():
		desc = fmt.Sprintf("%s meets %s. %s",
			capitalize(a1.EnergyStyle), a2.EnergyStyle, inter.Dynamic)
	default:
		desc = fmt.Sprintf("%s encounters %s. %s",
			capitalize(a1.RelationalTrait), a2.RelationalTrait, inter.Dynamic)
	}

	return Compatibility{Climate: inter.Climate, Description: desc}
}

func mustArchetype(s zodiac.Sign) Archetype {
	a, ok := archetypes[s]
	if !ok {
		panic(fmt.Sprintf("horoscope: no archetype for %s", s))
	}
	return a
}

func mustInteraction(from, to zodiac.Element) ElementInteraction {
	i, ok := interactions[elementPair{from, to}]
	if !ok {
		panic(fmt.Sprintf("horoscope: no interaction for %s -> %s", from, to))
	}
	return i
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
