package roll

import (
	"strconv"

	"github.com/louisbranch/cortex-dice/internal/core/dice"
	apperrors "github.com/louisbranch/cortex-dice/internal/platform/errors"
)

// DefaultMaxDice caps a single roll when no other limit is configured.
const DefaultMaxDice = 30

// maxHitchOn keeps at least the top face of a D12 eligible.
const maxHitchOn = 11

// Rules are the table settings applied to a roll.
type Rules struct {
	// Keep is how many dice are summed into a Total.
	Keep int
	// HitchOn is the highest face that counts as a hitch.
	HitchOn int
	// MaxDice caps the number of dice in one pool; zero falls back to dice.MaxQuantity.
	MaxDice int
	// SuggestBest adds the best Total/Effect selection to the report.
	SuggestBest bool
	// Difficulty, when positive, is checked against every suggested Total.
	Difficulty int
}

// DefaultRules returns the standard Cortex settings.
func DefaultRules() Rules {
	return Rules{
		Keep:        dice.DefaultKeep,
		HitchOn:     dice.DefaultHitchOn,
		MaxDice:     DefaultMaxDice,
		SuggestBest: true,
	}
}

// Validate rejects settings that cannot describe a Cortex roll.
func (r Rules) Validate() error {
	if r.Keep < 1 {
		return apperrors.WithMetadata(apperrors.CodeRulesInvalidKeep, "keep must be positive: "+strconv.Itoa(r.Keep), nil)
	}
	if r.HitchOn < 1 || r.HitchOn > maxHitchOn {
		return apperrors.WithMetadata(apperrors.CodeRulesInvalidHitchOn, "hitch threshold out of range: "+strconv.Itoa(r.HitchOn), nil)
	}
	if r.MaxDice < 0 || r.MaxDice > dice.MaxQuantity {
		return apperrors.WithMetadata(apperrors.CodeRulesInvalidMaxDice, "max dice out of range: "+strconv.Itoa(r.MaxDice), map[string]string{"Limit": strconv.Itoa(dice.MaxQuantity)})
	}
	if r.Difficulty < 0 {
		return apperrors.WithMetadata(apperrors.CodeRulesInvalidDifficulty, "difficulty must not be negative: "+strconv.Itoa(r.Difficulty), nil)
	}
	return nil
}
