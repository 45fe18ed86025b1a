package horoscope

// Influence is how a weather mood shapes a couple's energy and what kind of
// activity it favours.
type Influence struct {
	Mood              string
	EnergyDescription string
	ActivityType      string
}

var influences = []Influence{
	{Mood: "energetic", EnergyDescription: "outgoing and social", ActivityType: "outdoor adventures"},
	{Mood: "cozy", EnergyDescription: "introspective and intimate", ActivityType: "indoor bonding activities"},
	{Mood: "contemplative", EnergyDescription: "thoughtful and reflective", ActivityType: "deep conversations"},
	{Mood: "serene", EnergyDescription: "peaceful and calm", ActivityType: "quiet togetherness"},
	{Mood: "mysterious", EnergyDescription: "enigmatic and curious", ActivityType: "exploring something new"},
	{Mood: "balanced", EnergyDescription: "harmonious and steady", ActivityType: "collaborative projects"},
	{Mood: "intense", EnergyDescription: "emotionally charged", ActivityType: "passionate expressions"},
	{Mood: "romantic", EnergyDescription: "tender and affectionate", ActivityType: "romantic gestures"},
	{Mood: "restless", EnergyDescription: "dynamic and changeable", ActivityType: "spontaneous plans"},
	{Mood: "passionate", EnergyDescription: "fiery and expressive", ActivityType: "bold experiences"},
	{Mood: "refreshing", EnergyDescription: "invigorating and clear", ActivityType: "fresh starts"},
	{Mood: "sluggish", EnergyDescription: "low-energy and laid-back", ActivityType: "relaxed lounging"},
}

var influenceByMood = func() map[string]Influence {
	m := make(map[string]Influence, len(influences))
	for _, in := range influences {
		m[in.Mood] = in
	}
	return m
}()

// ResolveInfluence looks up the influence for a mood key. Unknown moods
// report false; callers treat that as "no weather influence".
func ResolveInfluence(mood string) (Influence, bool) {
	in, ok := influenceByMood[mood]
	return in, ok
}

// Moods returns the known mood keys in table order.
func Moods() []string {
	moods := make([]string, len(influences))
	for i, in := range influences {
		moods[i] = in.Mood
	}
	return moods
}
