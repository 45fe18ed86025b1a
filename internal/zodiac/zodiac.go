package zodiac

import (
	"fmt"
	"strings"
)

// Element groups signs into compatibility families.
type Element int

const (
	Fire Element = iota
	Earth
	Air
	Water
)

// Elements lists the four elements in canonical order.
var Elements = []Element{Fire, Earth, Air, Water}

func (e Element) String() string {
	switch e {
	case Fire:
		return "Fire"
	case Earth:
		return "Earth"
	case Air:
		return "Air"
	case Water:
		return "Water"
	default:
		return fmt.Sprintf("Element(%d)", int(e))
	}
}

// Sign is one of the 12 zodiac signs, ordered by astrological calendar
// starting with Aries.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

type signInfo struct {
	name      string
	dateRange string
	element   Element
	symbol    string
}

var catalog = [...]signInfo{
	Aries:       {"Aries", "Mar 21 - Apr 19", Fire, "♈"},
	Taurus:      {"Taurus", "Apr 20 - May 20", Earth, "♉"},
	Gemini:      {"Gemini", "May 21 - Jun 20", Air, "♊"},
	Cancer:      {"Cancer", "Jun 21 - Jul 22", Water, "♋"},
	Leo:         {"Leo", "Jul 23 - Aug 22", Fire, "♌"},
	Virgo:       {"Virgo", "Aug 23 - Sep 22", Earth, "♍"},
	Libra:       {"Libra", "Sep 23 - Oct 22", Air, "♎"},
	Scorpio:     {"Scorpio", "Oct 23 - Nov 21", Water, "♏"},
	Sagittarius: {"Sagittarius", "Nov 22 - Dec 21", Fire, "♐"},
	Capricorn:   {"Capricorn", "Dec 22 - Jan 19", Earth, "♑"},
	Aquarius:    {"Aquarius", "Jan 20 - Feb 18", Air, "♒"},
	Pisces:      {"Pisces", "Feb 19 - Mar 20", Water, "♓"},
}

// All returns the 12 signs in calendar order.
func All() []Sign {
	signs := make([]Sign, len(catalog))
	for i := range catalog {
		signs[i] = Sign(i)
	}
	return signs
}

// Valid reports whether s is one of the 12 signs.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

func (s Sign) info() signInfo {
	if !s.Valid() {
		return signInfo{name: fmt.Sprintf("Sign(%d)", int(s)), element: -1}
	}
	return catalog[s]
}

func (s Sign) Name() string { return s.info().name }
func (s Sign) DateRange() string { return s.info().dateRange }
func (s Sign) Element() Element { return s.info().element }
func (s Sign) Symbol() string { return s.info().symbol }

func (s Sign) String() string { return s.Name() }

// FromDisplayName looks up a sign by display name, ignoring case and
// surrounding whitespace.
func FromDisplayName(name string) (Sign, bool) {
	name = strings.TrimSpace(name)
	for i, info := range catalog {
		if strings.EqualFold(info.name, name) {
			return Sign(i), true
		}
	}
	return 0, false
}

// MarshalText encodes the sign as its display name.
func (s Sign) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid sign %d", int(s))
	}
	return []byte(s.Name()), nil
}

// UnmarshalText decodes a display name. Unknown names produce an error
// carrying the closest match, if any.
func (s *Sign) UnmarshalText(text []byte) error {
	name := string(text)
	if sign, ok := FromDisplayName(name); ok {
		*s = sign
		return nil
	}
	if guess, ok := Suggest(name); ok {
		return fmt.Errorf("unknown zodiac sign %q (did you mean %s?)", name, guess)
	}
	return fmt.Errorf("unknown zodiac sign %q", name)
}
