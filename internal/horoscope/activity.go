package horoscope

import (
	"strings"

	"github.com/lox/cosmicweather/internal/zodiac"
)

// defaultActivityType is used when the weather mood has no influence.
const defaultActivityType = "quality time together"

// pairEnergy is the combined pace of two signs.
type pairEnergy int

const (
	energyBalanced pairEnergy = iota
	energyHigh
	energyGrounded
)

func (e pairEnergy) String() string {
	switch e {
	case energyHigh:
		return "high-energy"
	case energyGrounded:
		return "grounded"
	default:
		return "balanced"
	}
}

func isActive(e zodiac.Element) bool { return e == zodiac.Fire || e == zodiac.Air }

func combinedEnergy(sign1, sign2 zodiac.Sign) pairEnergy {
	a1, a2 := isActive(sign1.Element()), isActive(sign2.Element())
	switch {
	case a1 && a2:
		return energyHigh
	case !a1 && !a2:
		return energyGrounded
	default:
		return energyBalanced
	}
}

// pick chooses between high-energy, grounded and balanced phrasing.
func (e pairEnergy) pick(high, grounded, balanced string) string {
	switch e {
	case energyHigh:
		return high
	case energyGrounded:
		return grounded
	default:
		return balanced
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// suggestActivity resolves the activity category, weather condition and the
// pair's combined energy into one suggestion. Categories are tried in a fixed
// order and the first match wins.
func suggestActivity(sign1, sign2 zodiac.Sign, activityType, condition string) string {
	energy := combinedEnergy(sign1, sign2)
	weather := strings.ToLower(condition)

	switch {
	case strings.Contains(activityType, "outdoor"):
		return outdoorActivity(energy, weather)
	case strings.Contains(activityType, "indoor"):
		return indoorActivity(energy, weather)
	case strings.Contains(activityType, "conversation"):
		return energy.pick(
			"Engage in lively discussion over coffee or a shared activity",
			"Find a quiet spot for deep, meaningful dialogue",
			"Talk at whatever pace feels natural - deep or light, serious or playful",
		)
	case strings.Contains(activityType, "romantic"):
		if sign1.Element() == zodiac.Water || sign2.Element() == zodiac.Water {
			if energy == energyGrounded {
				return "Set the mood with candles, music, and emotional intimacy"
			}
			return "Create romance through emotional depth and shared vulnerability"
		}
		if energy == energyHigh {
			return "Bring excitement to romance - adventure, surprise, and spontaneity"
		}
		return "Create romance through thoughtful gestures and undivided attention"
	case containsAny(activityType, "passionate", "expressions"):
		return energy.pick(
			"Express yourselves through dance, art, or physical activity",
			"Channel passion into a shared creative or sensory experience",
			"Find your own way to express passion - active or contemplative",
		)
	case strings.Contains(activityType, "spontaneous"):
		return energy.pick(
			"Say yes to adventure - no plans, just go where energy takes you",
			"Follow your intuition to whatever feels right in the moment",
			"Be spontaneous in your own way - impulsive or gently unplanned",
		)
	case containsAny(activityType, "exploring", "new"):
		return energy.pick(
			"Explore a new neighborhood, restaurant, or activity together",
			"Discover something new at a comfortable pace - a museum, gallery, or bookstore",
			"Find new experiences that work for both of you - adventurous or gentle",
		)
	case containsAny(activityType, "quiet", "togetherness"):
		return energy.pick(
			"Find stillness together, even if it's through shared activity first",
			"Simply be together in comfortable silence or gentle presence",
			"Enjoy time together without pressure - quiet or gently interactive",
		)
	default:
		return energy.pick(
			"Keep things lively and engaging - variety is your friend",
			"Spend quality time in comfortable routine or peaceful presence",
			"Balance activity and rest - honor both your energies",
		)
	}
}

func outdoorActivity(energy pairEnergy, weather string) string {
	switch weather {
	case "sunny":
		return energy.pick(
			"Go for an adventurous hike or try a new outdoor sport together",
			"Take a peaceful nature walk or have a picnic in the park",
			"Enjoy a leisurely outdoor activity that combines movement and rest",
		)
	case "windy":
		return energy.pick(
			"Fly kites or embrace the wild energy with an outdoor adventure",
			"Take a brisk walk and enjoy the fresh, moving air",
			"Feel the wind together - let it energize or ground you as needed",
		)
	case "rainy", "stormy":
		return energy.pick(
			"Dance in the rain or splash through puddles together",
			"Bundle up for a cozy outdoor stroll and meaningful conversation",
			"Embrace the weather - find your own rhythm in the rain",
		)
	case "snowy":
		return energy.pick(
			"Have a snowball fight or build something creative together",
			"Take a quiet winter walk and enjoy the peaceful silence",
			"Experience the snow at your own pace - playful or peaceful",
		)
	case "foggy", "cloudy":
		return energy.pick(
			"Turn the mystery into an adventure - explore somewhere familiar with fresh eyes",
			"Wander slowly and let the soft light create an intimate atmosphere",
			"Let the muted weather match your energy - calm or curious",
		)
	default:
		return energy.pick(
			"Get outside and let your combined energy guide the activity",
			"Spend time in nature, moving at a comfortable, connected pace",
			"Find an outdoor activity that honors both your energies",
		)
	}
}

func indoorActivity(energy pairEnergy, weather string) string {
	switch weather {
	case "rainy", "stormy":
		return energy.pick(
			"Try a new recipe or play board games to stay energized",
			"Cook a comforting meal together and share stories",
			"Create a cozy indoor space that feels both safe and stimulating",
		)
	case "snowy", "foggy":
		return energy.pick(
			"Build a blanket fort and watch your favorite movies",
			"Create a cozy sanctuary with blankets, tea, and quiet time",
			"Design an indoor haven that balances comfort with engagement",
		)
	default:
		return energy.pick(
			"Try an energetic indoor activity - dancing, working out, or tackling a project",
			"Enjoy quiet indoor activities - reading, crafts, or relaxed conversation",
			"Find an indoor balance - mix active projects with restful moments",
		)
	}
}
