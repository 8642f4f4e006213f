package dice

import "strconv"

// Size is the number of faces on a Cortex die.
type Size int

const (
	D4  Size = 4
	D6  Size = 6
	D8  Size = 8
	D10 Size = 10
	D12 Size = 12
)

// FallbackEffect is the effect die used when no rolled die can be reserved.
// An effect die never steps below a D4.
const FallbackEffect = D4

// Sizes lists every legal die size in ascending order.
var Sizes = [sizeCount]Size{D4, D6, D8, D10, D12}

const sizeCount = 5

// Valid reports whether s is one of the legal die sizes.
func (s Size) Valid() bool {
	return s.index() >= 0
}

// index returns the arena slot for s, or -1 when s is not a legal size.
func (s Size) index() int {
	switch s {
	case D4:
		return 0
	case D6:
		return 1
	case D8:
		return 2
	case D10:
		return 3
	case D12:
		return 4
	default:
		return -1
	}
}

func (s Size) String() string {
	return "D" + strconv.Itoa(int(s))
}
