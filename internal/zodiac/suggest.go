package zodiac

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the sign whose display name is closest to name, as long as
// the edit distance stays within a limit scaled to the name's length.
func Suggest(name string) (Sign, bool) {
	in := strings.ToLower(strings.TrimSpace(name))
	if len(in) < 3 {
		return 0, false
	}

	best, bestDist := Sign(0), -1
	for _, s := range All() {
		candidate := strings.ToLower(s.Name())
		dist := levenshtein.ComputeDistance(in, candidate)
		if dist > distanceLimit(len(candidate)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = s, dist
		}
	}
	return best, bestDist >= 0
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
