package horoscope

import "github.com/lox/cosmicweather/internal/zodiac"

// Archetype holds the personality fragments a sign contributes to composed
// descriptions.
type Archetype struct {
	EnergyStyle        string
	RelationalTrait    string
	CommunicationStyle string
}

var archetypes = map[zodiac.Sign]Archetype{
	zodiac.Aries: {
		EnergyStyle:        "bold and pioneering",
		RelationalTrait:    "direct and courageous",
		CommunicationStyle: "blunt, enthusiastic",
	},
	zodiac.Taurus: {
		EnergyStyle:        "steady and sensual",
		RelationalTrait:    "loyal and patient",
		CommunicationStyle: "calm, deliberate",
	},
	zodiac.Gemini: {
		EnergyStyle:        "quick and curious",
		RelationalTrait:    "playful and adaptable",
		CommunicationStyle: "witty, talkative",
	},
	zodiac.Cancer: {
		EnergyStyle:        "nurturing and protective",
		RelationalTrait:    "devoted and sensitive",
		CommunicationStyle: "gentle, intuitive",
	},
	zodiac.Leo: {
		EnergyStyle:        "radiant and generous",
		RelationalTrait:    "warm and wholehearted",
		CommunicationStyle: "expressive, dramatic",
	},
	zodiac.Virgo: {
		EnergyStyle:        "precise and attentive",
		RelationalTrait:    "thoughtful and practical",
		CommunicationStyle: "careful, analytical",
	},
	zodiac.Libra: {
		EnergyStyle:        "graceful and harmonizing",
		RelationalTrait:    "fair-minded and romantic",
		CommunicationStyle: "diplomatic, charming",
	},
	zodiac.Scorpio: {
		EnergyStyle:        "intense and magnetic",
		RelationalTrait:    "deep and fiercely loyal",
		CommunicationStyle: "probing, honest",
	},
	zodiac.Sagittarius: {
		EnergyStyle:        "free-spirited and adventurous",
		RelationalTrait:    "optimistic and open-hearted",
		CommunicationStyle: "frank, philosophical",
	},
	zodiac.Capricorn: {
		EnergyStyle:        "ambitious and disciplined",
		RelationalTrait:    "committed and responsible",
		CommunicationStyle: "measured, purposeful",
	},
	zodiac.Aquarius: {
		EnergyStyle:        "inventive and independent",
		RelationalTrait:    "unconventional and idealistic",
		CommunicationStyle: "visionary, detached",
	},
	zodiac.Pisces: {
		EnergyStyle:        "dreamy and compassionate",
		RelationalTrait:    "empathetic and imaginative",
		CommunicationStyle: "poetic, soft-spoken",
	},
}

// ArchetypeFor returns the archetype of s.
func ArchetypeFor(s zodiac.Sign) (Archetype, bool) {
	a, ok := archetypes[s]
	return a, ok
}

// ElementInteraction describes how an element meets another. Ordered pairs
// may be phrased differently in each direction.
type ElementInteraction struct {
	Climate string
	Dynamic string
}

type elementPair struct {
	from, to zodiac.Element
}

var interactions = map[elementPair]ElementInteraction{
	{zodiac.Fire, zodiac.Fire}: {
		Climate: "Passionate and blazing",
		Dynamic: "Two flames feed each other's drive, so keep the spark from turning into a power struggle.",
	},
	{zodiac.Fire, zodiac.Earth}: {
		Climate: "Warm but grounded",
		Dynamic: "Fire brings the spark while Earth offers a hearth to hold it.",
	},
	{zodiac.Fire, zodiac.Air}: {
		Climate: "Electric and inspiring",
		Dynamic: "Air fans Fire's ambitions into bold shared plans.",
	},
	{zodiac.Fire, zodiac.Water}: {
		Climate: "Steamy and unpredictable",
		Dynamic: "Fire's heat meets Water's depth, asking for patience on both sides.",
	},
	{zodiac.Earth, zodiac.Fire}: {
		Climate: "Steady with a spark",
		Dynamic: "Earth's patience gives Fire's enthusiasm somewhere lasting to land.",
	},
	{zodiac.Earth, zodiac.Earth}: {
		Climate: "Solid and secure",
		Dynamic: "Shared practicality builds a bond that grows stronger with time.",
	},
	{zodiac.Earth, zodiac.Air}: {
		Climate: "Practical meets whimsical",
		Dynamic: "Earth anchors Air's ideas while Air lifts Earth beyond routine.",
	},
	{zodiac.Earth, zodiac.Water}: {
		Climate: "Nurturing and stable",
		Dynamic: "Earth gives Water a safe shore and Water softens Earth's edges.",
	},
	{zodiac.Air, zodiac.Fire}: {
		Climate: "Lively and bright",
		Dynamic: "Air's ideas give Fire's passion direction and momentum.",
	},
	{zodiac.Air, zodiac.Earth}: {
		Climate: "Curious but anchored",
		Dynamic: "Air's restlessness finds calm in Earth's reliable rhythm.",
	},
	{zodiac.Air, zodiac.Air}: {
		Climate: "Intellectually stimulating",
		Dynamic: "A meeting of minds that thrives on conversation and shared ideas.",
	},
	{zodiac.Air, zodiac.Water}: {
		Climate: "Misty and dreamlike",
		Dynamic: "Air's logic and Water's feeling learn to translate for each other.",
	},
	{zodiac.Water, zodiac.Fire}: {
		Climate: "Tender yet fiery",
		Dynamic: "Water's empathy cools Fire's impulses without dousing the flame.",
	},
	{zodiac.Water, zodiac.Earth}: {
		Climate: "Deeply rooted",
		Dynamic: "Water nourishes Earth's ambitions while Earth steadies Water's tides.",
	},
	{zodiac.Water, zodiac.Air}: {
		Climate: "Gentle and breezy",
		Dynamic: "Water's intuition grounds Air's wandering thoughts in feeling.",
	},
	{zodiac.Water, zodiac.Water}: {
		Climate: "Deeply intuitive",
		Dynamic: "Emotional tides run in sync, creating an almost psychic understanding.",
	},
}

// InteractionFor returns the interaction for the ordered element pair.
func InteractionFor(from, to zodiac.Element) (ElementInteraction, bool) {
	i, ok := interactions[elementPair{from, to}]
	return i, ok
}
