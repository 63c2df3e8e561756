package draft

// Tier bands on the canonical 1-5 rating scale. The lower bound of each band
// is inclusive.
const (
	tier2Floor = 0.10
	tier3Floor = 0.25
	tier4Floor = 0.65
	tier5Floor = 0.95
)

// Tier maps a selection weight to the rating a team should receive next.
// Negative weights and weights of 0.95 or more map to 5.
func Tier(weight float64) int {
	switch {
	case weight >= 0 && weight < tier2Floor:
		return 1
	case weight >= tier2Floor && weight < tier3Floor:
		return 2
	case weight >= tier3Floor && weight < tier4Floor:
		return 3
	case weight >= tier4Floor && weight < tier5Floor:
		return 4
	default:
		return 5
	}
}

// selectionWeight draws the weight for a team. Teams lagging the pool average
// get r1+r2, which leans towards the strong tiers; the rest get r1-r2.
func selectionWeight(rng RandSource, strength, average float64) float64 {
	weight := rng.Float64()
	if strength < average {
		return weight + rng.Float64()
	}
	return weight - rng.Float64()
}
