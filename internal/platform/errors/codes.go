// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dice notation errors
	CodeDiceInvalidNotation Code = "DICE_INVALID_NOTATION"
	CodeDiceInvalidSize     Code = "DICE_INVALID_SIZE"
	CodeDiceInvalidQuantity Code = "DICE_INVALID_QUANTITY"
	CodeDiceMissing         Code = "DICE_MISSING"

	// Pool errors
	CodeDiceExcessiveQuantity Code = "DICE_EXCESSIVE_QUANTITY"

	// Rule errors
	CodeRulesInvalidKeep       Code = "RULES_INVALID_KEEP"
	CodeRulesInvalidHitchOn    Code = "RULES_INVALID_HITCH_ON"
	CodeRulesInvalidDifficulty Code = "RULES_INVALID_DIFFICULTY"
	CodeRulesInvalidMaxDice    Code = "RULES_INVALID_MAX_DICE"
	CodeRulesInvalidSamples    Code = "RULES_INVALID_SAMPLES"
)

// InvalidArgument reports whether the code describes bad caller input rather
// than an internal failure.
func (c Code) InvalidArgument() bool {
	switch c {
	case CodeDiceInvalidNotation,
		CodeDiceInvalidSize,
		CodeDiceInvalidQuantity,
		CodeDiceMissing,
		CodeDiceExcessiveQuantity,
		CodeRulesInvalidKeep,
		CodeRulesInvalidHitchOn,
		CodeRulesInvalidDifficulty,
		CodeRulesInvalidMaxDice,
		CodeRulesInvalidSamples:
		return true
	default:
		return false
	}
}
