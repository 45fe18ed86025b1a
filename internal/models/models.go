package models

// Weather is a seeded weather scenario. Records are created once when the
// store is seeded and never modified afterwards.
type Weather struct {
	ID          int    `yaml:"id" json:"id"`
	Condition   string `yaml:"condition" json:"condition"`     // e.g. "Sunny", "Rainy", "Snowy"
	Temperature int    `yaml:"temperature" json:"temperature"` // Celsius
	Emoji       string `yaml:"emoji" json:"emoji"`
	Mood        string `yaml:"mood" json:"mood"` // drives the weather influence: "energetic", "cozy", ...
}
