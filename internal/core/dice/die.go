package dice

import (
	"fmt"
	"strconv"
)

// Die is a group of identical dice of one size.
//
// Values is empty until the group is rolled and holds exactly Qty faces
// afterwards.
type Die struct {
	Size   Size
	Qty    int
	Values []int
}

// Result is one eligible face and the size of the die that rolled it.
type Result struct {
	Face int
	Size Size
}

// MaxQuantity bounds a single group and a whole pool, whatever cap the pool
// is configured with.
const MaxQuantity = 1000

// NewDie returns an unrolled group of qty dice of the given size. It is the
// single place where a group's size and quantity are validated.
func NewDie(size Size, qty int) (Die, error) {
	if !size.Valid() {
		return Die{}, fmt.Errorf("%w: %d", ErrInvalidSize, int(size))
	}
	if qty <= 0 {
		return Die{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	if qty > MaxQuantity {
		return Die{}, fmt.Errorf("%w: %d exceeds the limit of %d", ErrExcessiveQuantity, qty, MaxQuantity)
	}
	return Die{Size: size, Qty: qty}, nil
}

// Roll replaces the group's faces with Qty fresh draws from src.
func (d *Die) Roll(src Source) []int {
	values := make([]int, d.Qty)
	for i := range values {
		values[i] = rollDie(src, int(d.Size))
	}
	d.Values = values
	return values
}

// Rolled reports whether the group holds faces.
func (d Die) Rolled() bool {
	return len(d.Values) > 0
}

// IsHitch reports whether face is at or below the hitch threshold.
func IsHitch(face, threshold int) bool {
	return face <= threshold
}

// EligibleResults returns the faces above threshold in roll order.
func (d Die) EligibleResults(threshold int) []Result {
	var results []Result
	for _, face := range d.Values {
		if !IsHitch(face, threshold) {
			results = append(results, Result{Face: face, Size: d.Size})
		}
	}
	return results
}

// IsBotch reports whether the group rolled nothing but natural 1s.
//
// The botch rule always uses 1, whatever hitch threshold the caller applies
// elsewhere.
func (d Die) IsBotch() bool {
	if !d.Rolled() {
		return false
	}
	for _, face := range d.Values {
		if face > 1 {
			return false
		}
	}
	return true
}

// String renders the group as Cortex notation: "D8" or "3D8".
func (d Die) String() string {
	if d.Qty > 1 {
		return strconv.Itoa(d.Qty) + d.Size.String()
	}
	return d.Size.String()
}

func (d Die) clone() Die {
	out := d
	if d.Values != nil {
		out.Values = append([]int(nil), d.Values...)
	}
	return out
}
