package life

import (
	"fmt"
	"strings"
)

// Rule maps a cell's current state and live-neighbour count to its next
// state. Rules must be pure.
type Rule func(cur Cell, neighbors int) Cell

// Conway is the classic B3/S23 rule.
func Conway(cur Cell, neighbors int) Cell {
	if cur == Alive {
		if neighbors == 2 || neighbors == 3 {
			return Alive
		}
		return Dead
	}
	if neighbors == 3 {
		return Alive
	}
	return Dead
}

// ConwayNotation is the birth/survival string for Conway.
const ConwayNotation = "B3/S23"

// ParseRule builds a Rule from birth/survival notation such as "B3/S23" or
// "B36/S23". Neighbour counts range over 0..8.
func ParseRule(s string) (Rule, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	if norm == "" || norm == ConwayNotation {
		return Conway, nil
	}
	parts := strings.Split(norm, "/")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}
	var birth, survive uint16
	var sawB, sawS bool
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRule, s)
		}
		var mask *uint16
		switch part[0] {
		case 'B':
			if sawB {
				return nil, fmt.Errorf("%w: %q repeats B", ErrInvalidRule, s)
			}
			sawB, mask = true, &birth
		case 'S':
			if sawS {
				return nil, fmt.Errorf("%w: %q repeats S", ErrInvalidRule, s)
			}
			sawS, mask = true, &survive
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidRule, s)
		}
		for _, d := range part[1:] {
			if d < '0' || d > '8' {
				return nil, fmt.Errorf("%w: %q has count %q", ErrInvalidRule, s, d)
			}
			*mask |= 1 << uint(d-'0')
		}
	}
	return maskRule(birth, survive), nil
}

func maskRule(birth, survive uint16) Rule {
	return func(cur Cell, neighbors int) Cell {
		if neighbors < 0 || neighbors > 8 {
			return Dead
		}
		mask := birth
		if cur == Alive {
			mask = survive
		}
		if mask&(1<<uint(neighbors)) != 0 {
			return Alive
		}
		return Dead
	}
}
