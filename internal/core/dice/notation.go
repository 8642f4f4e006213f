package dice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// notationPattern matches "[qty]d<size>" and a bare "<size>" for the legal
// sizes only. The quantity is captured loosely so a bad count gets a specific
// error instead of a generic notation failure.
var notationPattern = regexp.MustCompile(`^(?:(-?\d*)[dD])?(4|6|8|10|12)$`)

// sizedPattern matches well-formed notation with any number of faces, which
// tells an illegal size apart from text that is not dice at all.
var sizedPattern = regexp.MustCompile(`^(?:-?\d*[dD])?(?:0|[1-9]\d*)$`)

// NotationError reports why a single token could not become a die group.
type NotationError struct {
	Token string
	Err   error
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Token)
}

func (e *NotationError) Unwrap() error {
	return e.Err
}

// ParseDie parses one explicit die expression such as "d8", "3D6" or "12".
//
// It fails with ErrInvalidNotation when the token is not dice notation,
// ErrInvalidSize when the size is not a legal Cortex die,
// ErrInvalidQuantity when the quantity is zero, negative or unreadable and
// ErrExcessiveQuantity when it is above MaxQuantity.
// Returned errors are *NotationError values naming the token.
func ParseDie(token string) (Die, error) {
	die, err := parseToken(token)
	if err != nil {
		return Die{}, err
	}
	return die, nil
}

func parseToken(token string) (Die, *NotationError) {
	match := notationPattern.FindStringSubmatch(token)
	if match == nil {
		if sizedPattern.MatchString(token) {
			return Die{}, &NotationError{Token: token, Err: ErrInvalidSize}
		}
		return Die{}, &NotationError{Token: token, Err: ErrInvalidNotation}
	}

	qty := 1
	if match[1] != "" {
		parsed, err := strconv.Atoi(match[1])
		switch {
		case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(match[1], "-"):
			return Die{}, &NotationError{Token: token, Err: ErrExcessiveQuantity}
		case err != nil:
			return Die{}, &NotationError{Token: token, Err: ErrInvalidQuantity}
		}
		qty = parsed
	}

	size, _ := strconv.Atoi(match[2])
	die, err := NewDie(Size(size), qty)
	if err != nil {
		return Die{}, &NotationError{Token: token, Err: err}
	}
	return die, nil
}

// Batch is the result of lenient parsing over a whole input line.
type Batch struct {
	// Dice holds every group that parsed, in input order.
	Dice []Die
	// Rejected holds the per-token failures that were skipped.
	Rejected []*NotationError
}

// ParseDice splits line on whitespace and parses every token with ParseDie.
//
// Parsing is lenient: a bad token is recorded in Batch.Rejected and the rest
// of the line is still used. ErrNoDiceFound is returned only when no token
// produced a die.
func ParseDice(line string) (Batch, error) {
	var batch Batch
	for _, token := range strings.Fields(line) {
		die, err := parseToken(token)
		if err != nil {
			batch.Rejected = append(batch.Rejected, err)
			continue
		}
		batch.Dice = append(batch.Dice, die)
	}
	if len(batch.Dice) == 0 {
		return batch, ErrNoDiceFound
	}
	return batch, nil
}
