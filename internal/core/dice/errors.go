package dice

import "errors"

// ErrInvalidNotation indicates a token is not dice notation at all.
var ErrInvalidNotation = errors.New("invalid die notation")

// ErrInvalidSize indicates a die size outside 4, 6, 8, 10 and 12.
var ErrInvalidSize = errors.New("invalid die size")

// ErrInvalidQuantity indicates a zero or negative die quantity.
var ErrInvalidQuantity = errors.New("die quantity must be greater than zero")

// ErrNoDiceFound indicates an input produced no valid dice.
var ErrNoDiceFound = errors.New("no valid dice found")

// ErrExcessiveQuantity indicates a pool would exceed its dice cap.
var ErrExcessiveQuantity = errors.New("too many dice")
