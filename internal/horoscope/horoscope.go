// Package horoscope turns a pair of zodiac signs and a weather scenario into
// a short templated reading.
//
// Generation is a pure function of its inputs. All lookup tables are
// package-level, built once at init and never written afterwards, so
// Generate is safe for concurrent use.
package horoscope

import (
	"errors"

	"github.com/lox/cosmicweather/internal/models"
	"github.com/lox/cosmicweather/internal/zodiac"
)

// ErrNoWeather is returned when Generate is called without a weather record.
var ErrNoWeather = errors.New("horoscope: weather is required")

// Horoscope is a generated reading for two signs under one weather scenario.
type Horoscope struct {
	Sign1               zodiac.Sign    `json:"sign1"`
	Sign2               zodiac.Sign    `json:"sign2"`
	Weather             models.Weather `json:"weather"`
	RelationshipClimate string         `json:"relationship_climate"`
	Compatibility       string         `json:"compatibility"`
	Communication       string         `json:"communication"`
	SuggestedActivity   string         `json:"suggested_activity"`
}

// Generate composes a horoscope for sign1 and sign2 under weather. Unknown
// moods and conditions fall back to default phrasing; the only error is a
// missing weather record.
func Generate(sign1, sign2 zodiac.Sign, weather *models.Weather) (Horoscope, error) {
	if weather == nil {
		return Horoscope{}, ErrNoWeather
	}

	compat := ResolveCompatibility(sign1, sign2)
	influence, ok := ResolveInfluence(weather.Mood)

	climate := compat.Climate
	activityType := defaultActivityType
	if ok {
		climate = compat.Climate + " with " + influence.EnergyDescription + " energy"
		activityType = influence.ActivityType
	}

	return Horoscope{
		Sign1:               sign1,
		Sign2:               sign2,
		Weather:             *weather,
		RelationshipClimate: climate,
		Compatibility:       compat.Description,
		Communication:       communicationAdvice(sign1, sign2, influence, ok),
		SuggestedActivity:   suggestActivity(sign1, sign2, activityType, weather.Condition),
	}, nil
}
