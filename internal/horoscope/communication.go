package horoscope

import (
	"fmt"
	"strings"

	"github.com/lox/cosmicweather/internal/zodiac"
)

// communicationTones is matched against the energy description in order;
// the first keyword found wins.
var communicationTones = []struct {
	keyword string
	tone    string
}{
	{"introspective", "Thoughtful and unhurried - take time to reflect before speaking"},
	{"outgoing", "Open and expressive - perfect time for big conversations"},
	{"emotionally charged", "Intense and honest - be mindful of strong reactions"},
	{"peaceful", "Calm and easy - understanding flows without effort"},
	{"dynamic", "Quick and playful - go with the flow"},
	{"low-energy", "Patient and gentle - save deep talks for later"},
	{"tender", "Gentle and vulnerable - openness is welcomed"},
}

const (
	genericTone   = "Stay authentic and present - let the moment guide you"
	noWeatherTone = "Communicate openly and with care - speak from the heart"
)

// communicationTone picks the tone for an energy description.
func communicationTone(energy string, hasInfluence bool) string {
	if !hasInfluence {
		return noWeatherTone
	}
	for _, t := range communicationTones {
		if strings.Contains(energy, t.keyword) {
			return t.tone
		}
	}
	return genericTone
}

// elementRapport describes how the two elements talk to each other.
func elementRapport(e1, e2 zodiac.Element) string {
	switch {
	case e1 == e2:
		return "naturally aligned"
	case isPair(e1, e2, zodiac.Fire, zodiac.Air):
		return "energizing and stimulating"
	case isPair(e1, e2, zodiac.Earth, zodiac.Water):
		return "supportive and grounding"
	case isPair(e1, e2, zodiac.Fire, zodiac.Water):
		return "requiring patience and care"
	default:
		return "bridging different perspectives"
	}
}

func isPair(e1, e2, a, b zodiac.Element) bool {
	return (e1 == a && e2 == b) || (e1 == b && e2 == a)
}

func communicationAdvice(sign1, sign2 zodiac.Sign, in Influence, hasInfluence bool) string {
	a1 := mustArchetype(sign1)
	a2 := mustArchetype(sign2)
	return fmt.Sprintf("%s. Your exchange is %s, with %s words meeting %s replies.",
		communicationTone(in.EnergyDescription, hasInfluence),
		elementRapport(sign1.Element(), sign2.Element()),
		a1.CommunicationStyle, a2.CommunicationStyle)
}
