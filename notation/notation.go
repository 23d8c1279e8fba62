// SPDX-License-Identifier: MIT

package notation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/presswork/effect"
)

// ErrSyntax is returned for lines that do not follow the machine notation.
var ErrSyntax = errors.New("notation: syntax error")

// Machine is one parsed input line.
type Machine struct {
	Line    int // 1-based line number in the source, 0 when parsed standalone
	Lights  effect.Pattern
	Buttons []effect.Button
	Joltage []int
}

// ToggleInstance views the machine under toggle semantics.
func (m Machine) ToggleInstance() effect.Instance {
	return effect.Instance{Semantics: effect.Toggle, Pattern: m.Lights, Buttons: m.Buttons}
}

// AdditiveInstance views the machine under additive semantics.
func (m Machine) AdditiveInstance() effect.Instance {
	return effect.Instance{Semantics: effect.Additive, Targets: m.Joltage, Buttons: m.Buttons}
}

// String renders the machine back into its notation.
func (m Machine) String() string {
	var sb strings.Builder
	sb.WriteString("[" + m.Lights.String() + "]")
	for _, b := range m.Buttons {
		sb.WriteString(" " + b.String())
	}
	sb.WriteString(" {")
	for i, v := range m.Joltage {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('}')

	return sb.String()
}

// ParseMachine parses a single line. Button IDs follow their position.
func ParseMachine(line string) (Machine, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Machine{}, fmt.Errorf("want pattern and joltage, got %d fields: %w", len(fields), ErrSyntax)
	}

	var m Machine
	head, tail := fields[0], fields[len(fields)-1]
	inner, ok := enclosed(head, '[', ']')
	if !ok {
		return Machine{}, fmt.Errorf("pattern %q: %w", head, ErrSyntax)
	}
	p, err := effect.ParsePattern(inner)
	if err != nil {
		return Machine{}, err
	}
	m.Lights = p

	inner, ok = enclosed(tail, '{', '}')
	if !ok {
		return Machine{}, fmt.Errorf("joltage %q: %w", tail, ErrSyntax)
	}
	if m.Joltage, err = intList(inner); err != nil {
		return Machine{}, fmt.Errorf("joltage %q: %w", tail, err)
	}
	for i, v := range m.Joltage {
		if v < 0 {
			return Machine{}, fmt.Errorf("joltage %d: %w", i, effect.ErrNegativeTarget)
		}
	}

	for k, f := range fields[1 : len(fields)-1] {
		inner, ok = enclosed(f, '(', ')')
		if !ok {
			return Machine{}, fmt.Errorf("button %d %q: %w", k, f, ErrSyntax)
		}
		idx, err := intList(inner)
		if err != nil {
			return Machine{}, fmt.Errorf("button %d %q: %w", k, f, err)
		}
		b, err := effect.NewButton(k, idx...)
		if err != nil {
			return Machine{}, err
		}
		if b.MaxIndex() >= m.Lights.Width || b.MaxIndex() >= len(m.Joltage) {
			return Machine{}, fmt.Errorf("button %d %s: width %d, %d counters: %w",
				k, b, m.Lights.Width, len(m.Joltage), effect.ErrIndexOutOfRange)
		}
		m.Buttons = append(m.Buttons, b)
	}

	return m, nil
}

// Parse reads every non-blank line of r. The first failure stops parsing and
// is reported with its line number.
func Parse(r io.Reader) ([]Machine, error) {
	var (
		out []Machine
		sc  = bufio.NewScanner(r)
		n   int
	)
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m, err := ParseMachine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		m.Line = n
		out = append(out, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("notation: read: %w", err)
	}

	return out, nil
}

// enclosed strips the open and end delimiters from s.
func enclosed(s string, open, end byte) (string, bool) {
	if len(s) < 2 || s[0] != open || s[len(s)-1] != end {
		return "", false
	}

	return s[1 : len(s)-1], true
}

// intList parses "1,2,3"; the empty string is the empty list.
func intList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", p, ErrSyntax)
		}
		out[i] = v
	}

	return out, nil
}
