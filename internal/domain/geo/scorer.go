// Package geo scores the proximity of two free-text Ghanaian locations without
// external geocoding, using a static gazetteer of regions, towns, and adjacency.
package geo

import "strings"

// Score constants returned by Similarity. Combined-score calibration depends on
// these exact values; changing them changes ranking behavior silently.
const (
	scoreMissing    = 0.1
	scoreExact      = 1.0
	scoreSubstring  = 0.9
	scoreSameTown   = 0.95
	scoreSameRegion = 0.7
	scoreAdjacent   = 0.5
	scoreTokens     = 0.4
	scoreNoMatch    = 0.1
	tokenRatioFloor = 0.3
	minTokenLen     = 3
)

// Similarity returns a proximity score in [0,1] for two free-text locations.
// Rules are evaluated in order; the first matching rule wins. Symmetric in its
// arguments and deterministic.
func Similarity(a, b string) float64 {
	locA := strings.ToLower(strings.TrimSpace(a))
	locB := strings.ToLower(strings.TrimSpace(b))

	if locA == "" || locB == "" {
		return scoreMissing
	}
	if locA == locB {
		return scoreExact
	}
	if strings.Contains(locA, locB) || strings.Contains(locB, locA) {
		return scoreSubstring
	}

	// Region pass: both locations resolve into the same region.
	for _, r := range regions {
		aIn := r.name == locA || firstTown(locA, r.towns) != ""
		bIn := r.name == locB || firstTown(locB, r.towns) != ""
		if aIn && bIn {
			townA := firstTown(locA, r.towns)
			townB := firstTown(locB, r.towns)
			if townA != "" && townA == townB {
				return scoreSameTown
			}
			return scoreSameRegion
		}
	}

	// Major-city pass.
	cityA, regionA := firstMajorCity(locA)
	cityB, regionB := firstMajorCity(locB)
	if cityA != "" && cityB != "" {
		if cityA == cityB {
			return scoreSameTown
		}
		if regionA == regionB {
			return scoreSameRegion
		}
	}

	// Adjacency pass. Same-region pairs were already handled above, so only
	// distinct regions reach this point.
	ra := resolveRegion(locA)
	rb := resolveRegion(locB)
	if ra != "" && rb != "" && regionsAdjacent(ra, rb) {
		return scoreAdjacent
	}

	// Token overlap fallback for district names and the like.
	tokensA := tokenize(locA)
	tokensB := tokenize(locB)
	if len(tokensA) > 0 && len(tokensB) > 0 {
		common := 0
		for _, w := range tokensA {
			if containsToken(tokensB, w) {
				common++
			}
		}
		total := len(tokensA)
		if len(tokensB) > total {
			total = len(tokensB)
		}
		if float64(common)/float64(total) >= tokenRatioFloor {
			return scoreTokens
		}
	}

	return scoreNoMatch
}

// firstTown returns the first gazetteer town contained in loc, or "".
func firstTown(loc string, towns []string) string {
	for _, t := range towns {
		if strings.Contains(loc, t) {
			return t
		}
	}
	return ""
}

// firstMajorCity returns the first major city contained in loc and its region.
func firstMajorCity(loc string) (city, cityRegion string) {
	for _, mc := range majorCities {
		if strings.Contains(loc, mc.city) {
			return mc.city, mc.region
		}
	}
	return "", ""
}

// resolveRegion returns the first region whose name equals loc or whose towns
// appear in loc, or "".
func resolveRegion(loc string) string {
	for _, r := range regions {
		if r.name == loc || firstTown(loc, r.towns) != "" {
			return r.name
		}
	}
	return ""
}

// regionsAdjacent reports whether two distinct regions neighbor each other.
// The table is treated as undirected.
func regionsAdjacent(ra, rb string) bool {
	for _, n := range adjacentRegions[ra] {
		if n == rb {
			return true
		}
	}
	for _, n := range adjacentRegions[rb] {
		if n == ra {
			return true
		}
	}
	return false
}

// tokenize splits loc on whitespace and commas, keeping tokens longer than 2 chars.
func tokenize(loc string) []string {
	fields := strings.FieldsFunc(loc, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func containsToken(tokens []string, w string) bool {
	for _, t := range tokens {
		if t == w {
			return true
		}
	}
	return false
}
