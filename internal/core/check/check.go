// Package check compares a rolled Total against a difficulty.
package check

// HeroicMargin is how far a Total must beat the difficulty for a heroic
// success.
const HeroicMargin = 5

// MeetsDifficulty returns true if total beats difficulty.
// In Cortex a tie goes to the side that set the difficulty.
func MeetsDifficulty(total, difficulty int) bool {
	return total > difficulty
}

// Margin calculates the margin of success or failure.
// Positive values indicate success, zero or negative indicate failure.
func Margin(total, difficulty int) int {
	return total - difficulty
}

// IsHeroic reports whether total beats difficulty by HeroicMargin or more.
func IsHeroic(total, difficulty int) bool {
	return Margin(total, difficulty) >= HeroicMargin
}

// Result represents the outcome of a difficulty check.
type Result struct {
	Difficulty int
	Success    bool
	Heroic     bool
	Margin     int
}

// Check performs a difficulty check and returns the result.
func Check(total, difficulty int) Result {
	return Result{
		Difficulty: difficulty,
		Success:    MeetsDifficulty(total, difficulty),
		Heroic:     IsHeroic(total, difficulty),
		Margin:     Margin(total, difficulty),
	}
}
