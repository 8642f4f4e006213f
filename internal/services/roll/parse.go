package roll

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/louisbranch/cortex-dice/internal/core/dice"
	apperrors "github.com/louisbranch/cortex-dice/internal/platform/errors"
)

// Rejection is a token dropped from a lenient parse.
type Rejection struct {
	Token string
	Err   error
}

// Parsed is the outcome of parsing one line of dice notation.
type Parsed struct {
	Dice     []dice.Die
	Rejected []Rejection
}

// Parse reads a whole line of dice notation leniently. Tokens that are not
// dice are reported in Parsed.Rejected; an error is returned only when the
// line holds no dice at all.
func Parse(line string) (Parsed, error) {
	batch, err := dice.ParseDice(line)
	parsed := Parsed{Dice: batch.Dice}
	for _, rejected := range batch.Rejected {
		parsed.Rejected = append(parsed.Rejected, Rejection{
			Token: rejected.Token,
			Err:   domainError(rejected, 0),
		})
	}
	if err != nil {
		return parsed, domainError(err, 0)
	}
	return parsed, nil
}

// ParseDie parses one explicit die expression strictly.
func ParseDie(token string) (dice.Die, error) {
	die, err := dice.ParseDie(token)
	if err != nil {
		return dice.Die{}, domainError(err, 0)
	}
	return die, nil
}

// domainError maps core dice errors onto coded platform errors. limit is the
// pool cap reported for ErrExcessiveQuantity; zero reports dice.MaxQuantity.
func domainError(err error, limit int) error {
	if err == nil {
		return nil
	}
	if limit <= 0 || limit > dice.MaxQuantity {
		limit = dice.MaxQuantity
	}
	token := ""
	var notationErr *dice.NotationError
	if errors.As(err, &notationErr) {
		token = notationErr.Token
	}
	metadata := map[string]string{"Token": token}

	switch {
	case errors.Is(err, dice.ErrInvalidNotation):
		return apperrors.WrapWithMetadata(apperrors.CodeDiceInvalidNotation, err.Error(), metadata, err)
	case errors.Is(err, dice.ErrInvalidSize):
		return apperrors.WrapWithMetadata(apperrors.CodeDiceInvalidSize, err.Error(), metadata, err)
	case errors.Is(err, dice.ErrInvalidQuantity):
		return apperrors.WrapWithMetadata(apperrors.CodeDiceInvalidQuantity, err.Error(), metadata, err)
	case errors.Is(err, dice.ErrNoDiceFound):
		return apperrors.Wrap(apperrors.CodeDiceMissing, err.Error(), err)
	case errors.Is(err, dice.ErrExcessiveQuantity):
		return apperrors.WrapWithMetadata(apperrors.CodeDiceExcessiveQuantity, err.Error(), map[string]string{"Limit": strconv.Itoa(limit)}, err)
	default:
		return apperrors.Wrap(apperrors.CodeUnknown, fmt.Sprintf("roll: %v", err), err)
	}
}
