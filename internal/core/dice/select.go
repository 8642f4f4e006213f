package dice

import "sort"

const (
	// DefaultKeep is the number of dice summed into a Total.
	DefaultKeep = 2
	// DefaultHitchOn is the highest face that counts as a hitch.
	DefaultHitchOn = 1
)

// Outcome is the shape of a selection.
type Outcome int

const (
	// OutcomeBotch means every die rolled a natural 1.
	OutcomeBotch Outcome = iota
	// OutcomeTotalOnly means too few eligible dice remained to reserve an
	// effect die, so all of them form the Total with a D4 effect.
	OutcomeTotalOnly
	// OutcomeTotalAndEffect means both best-total and best-effect picks
	// are available.
	OutcomeTotalAndEffect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBotch:
		return "Botch"
	case OutcomeTotalOnly:
		return "Total only"
	case OutcomeTotalAndEffect:
		return "Total and effect"
	default:
		return "Unknown"
	}
}

// Pick is one Total and Effect combination.
type Pick struct {
	Total   int
	Addends []Result
	Effect  Size
}

// Selection is the best-combination report for one roll.
//
// Only is set for OutcomeTotalOnly; BestTotal and BestEffect are set for
// OutcomeTotalAndEffect. Hitches is always set.
type Selection struct {
	Outcome    Outcome
	Hitches    int
	Only       Pick
	BestTotal  Pick
	BestEffect Pick
}

// SelectBest reports the best Total and Effect combinations for the current
// roll, keeping keep dice in the Total and treating faces at or below
// threshold as hitches. A pool that has not been rolled since its last change
// is rolled first. keep below 1 falls back to DefaultKeep.
func (p *Pool) SelectBest(keep, threshold int) Selection {
	if keep < 1 {
		keep = DefaultKeep
	}
	if p.state != StateRolled {
		p.Roll()
	}

	selection := Selection{Hitches: p.HitchCount(threshold)}
	if p.IsBotch() {
		selection.Outcome = OutcomeBotch
		return selection
	}

	eligible := p.EligibleResults(threshold)
	if len(eligible) <= keep {
		selection.Outcome = OutcomeTotalOnly
		selection.Only = totalOnly(eligible)
		return selection
	}

	selection.Outcome = OutcomeTotalAndEffect
	selection.BestTotal = bestTotalFirst(eligible, keep)
	selection.BestEffect = bestEffectFirst(eligible, keep)
	return selection
}

func totalOnly(eligible []Result) Pick {
	addends := append([]Result(nil), eligible...)
	return Pick{Total: sum(addends), Addends: addends, Effect: FallbackEffect}
}

// bestTotalFirst sums the keep highest faces and takes the largest die among
// those same faces as the effect.
func bestTotalFirst(eligible []Result, keep int) Pick {
	addends := highestFaces(eligible, keep)
	effect := FallbackEffect
	for _, result := range addends {
		if result.Size > effect {
			effect = result.Size
		}
	}
	return Pick{Total: sum(addends), Addends: addends, Effect: effect}
}

// bestEffectFirst reserves the largest die as the effect, spending its
// lowest face, and sums the keep highest faces that remain.
func bestEffectFirst(eligible []Result, keep int) Pick {
	effect := eligible[0].Size
	for _, result := range eligible[1:] {
		if result.Size > effect {
			effect = result.Size
		}
	}

	spent := -1
	for i, result := range eligible {
		if result.Size != effect {
			continue
		}
		if spent < 0 || result.Face < eligible[spent].Face {
			spent = i
		}
	}

	remaining := make([]Result, 0, len(eligible)-1)
	remaining = append(remaining, eligible[:spent]...)
	remaining = append(remaining, eligible[spent+1:]...)

	addends := highestFaces(remaining, keep)
	return Pick{Total: sum(addends), Addends: addends, Effect: effect}
}

// highestFaces returns up to keep results ordered by descending face. Equal
// faces keep their original order.
func highestFaces(results []Result, keep int) []Result {
	sorted := append([]Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Face > sorted[j].Face
	})
	if len(sorted) > keep {
		sorted = sorted[:keep]
	}
	return sorted
}

func sum(results []Result) int {
	total := 0
	for _, result := range results {
		total += result.Face
	}
	return total
}
