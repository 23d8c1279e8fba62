// SPDX-License-Identifier: MIT

package effect

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// MaxWidth is the widest toggle pattern a uint64 mask can hold.
const MaxWidth = 64

// Semantics selects how button presses combine.
type Semantics int

const (
	// Toggle: presses XOR bit positions; each button is used 0 or 1 times.
	Toggle Semantics = iota
	// Additive: presses add 1 to counters; each button is used any number of times.
	Additive
)

// String implements fmt.Stringer.
func (s Semantics) String() string {
	switch s {
	case Toggle:
		return "toggle"
	case Additive:
		return "additive"
	default:
		return fmt.Sprintf("Semantics(%d)", int(s))
	}
}

// Button is one unit of effect: its catalog position and the indices it affects.
// Indices are sorted ascending and free of duplicates.
type Button struct {
	ID      int
	Indices []int
}

// NewButton builds a Button, sorting and deduplicating indices.
// Negative indices yield ErrIndexOutOfRange.
func NewButton(id int, indices ...int) (Button, error) {
	idx := slices.Clone(indices)
	for _, i := range idx {
		if i < 0 {
			return Button{}, fmt.Errorf("button %d: index %d: %w", id, i, ErrIndexOutOfRange)
		}
	}
	slices.Sort(idx)
	idx = slices.Compact(idx)

	return Button{ID: id, Indices: idx}, nil
}

// MustButton is NewButton for literals in tests and examples; it panics on error.
func MustButton(id int, indices ...int) Button {
	b, err := NewButton(id, indices...)
	if err != nil {
		panic(err)
	}

	return b
}

// Affects reports whether the button touches index i.
func (b Button) Affects(i int) bool {
	_, ok := slices.BinarySearch(b.Indices, i)
	return ok
}

// MaxIndex returns the largest affected index, or -1 for a button with no effect.
func (b Button) MaxIndex() int {
	if len(b.Indices) == 0 {
		return -1
	}

	return b.Indices[len(b.Indices)-1]
}

// Mask returns the XOR mask of the button. Indices ≥ MaxWidth are dropped;
// Instance.Validate rejects them beforehand.
func (b Button) Mask() uint64 {
	var m uint64
	for _, i := range b.Indices {
		if i < MaxWidth {
			m |= 1 << uint(i)
		}
	}

	return m
}

// String renders the button in the puzzle notation, e.g. "(1,3)".
func (b Button) String() string {
	parts := make([]string, len(b.Indices))
	for k, i := range b.Indices {
		parts[k] = fmt.Sprint(i)
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// Masks converts buttons into XOR masks, preserving order.
func Masks(buttons []Button) []uint64 {
	out := make([]uint64, len(buttons))
	for k, b := range buttons {
		out[k] = b.Mask()
	}

	return out
}

// Pattern is a toggle target: bit i set means light i must end up on.
type Pattern struct {
	Bits  uint64
	Width int
}

// ParsePattern reads the dot/hash notation (".##.") where index 0 is the
// leftmost character. Surrounding brackets are not accepted here.
func ParsePattern(s string) (Pattern, error) {
	if len(s) > MaxWidth {
		return Pattern{}, fmt.Errorf("pattern %q: %w", s, ErrWidthTooLarge)
	}
	var p Pattern
	for i, c := range s {
		switch c {
		case '.':
		case '#':
			p.Bits |= 1 << uint(i)
		default:
			return Pattern{}, fmt.Errorf("pattern %q at %d: %w", s, i, ErrBadPattern)
		}
	}
	p.Width = len(s)

	return p, nil
}

// OnCount returns the number of lit positions.
func (p Pattern) OnCount() int { return bits.OnesCount64(p.Bits) }

// String renders the pattern back into the dot/hash notation.
func (p Pattern) String() string {
	var sb strings.Builder
	for i := 0; i < p.Width; i++ {
		if p.Bits&(1<<uint(i)) != 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}

	return sb.String()
}

// Instance is one puzzle: a target plus an ordered button catalog, tagged
// with the semantics that governs it. Pattern is used under Toggle, Targets
// under Additive.
type Instance struct {
	Semantics Semantics
	Pattern   Pattern
	Targets   []int
	Buttons   []Button
}

// Validate checks the instance shape:
//   - Toggle: width ≤ MaxWidth, no target bits beyond width, button indices < width.
//   - Additive: targets ≥ 0, button indices < len(Targets).
func (in Instance) Validate() error {
	switch in.Semantics {
	case Toggle:
		if in.Pattern.Width < 0 || in.Pattern.Width > MaxWidth {
			return ErrWidthTooLarge
		}
		if in.Pattern.Width < MaxWidth && in.Pattern.Bits>>uint(in.Pattern.Width) != 0 {
			return fmt.Errorf("pattern bits beyond width %d: %w", in.Pattern.Width, ErrIndexOutOfRange)
		}
		return validateButtons(in.Buttons, in.Pattern.Width)
	case Additive:
		for i, t := range in.Targets {
			if t < 0 {
				return fmt.Errorf("counter %d: %w", i, ErrNegativeTarget)
			}
		}
		return validateButtons(in.Buttons, len(in.Targets))
	default:
		return ErrUnknownSemantics
	}
}

func validateButtons(buttons []Button, limit int) error {
	for _, b := range buttons {
		for _, i := range b.Indices {
			if i < 0 || i >= limit {
				return fmt.Errorf("button %d: index %d (limit %d): %w", b.ID, i, limit, ErrIndexOutOfRange)
			}
		}
	}

	return nil
}

// Incidence builds the counters×buttons 0/1 coefficient matrix:
// a[i][j] == 1 iff button j affects counter i. Indices ≥ counters are ignored.
func Incidence(counters int, buttons []Button) [][]int {
	a := make([][]int, counters)
	for i := range a {
		a[i] = make([]int, len(buttons))
	}
	for j, b := range buttons {
		for _, i := range b.Indices {
			if i < counters {
				a[i][j] = 1
			}
		}
	}

	return a
}

// Solution is a press vector aligned with the button catalog and its cost.
// Under Toggle semantics every entry is 0 or 1.
type Solution struct {
	Presses []int
	Cost    int
}
