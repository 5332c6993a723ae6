package pageorder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for parsing and repair.
var (
	// ErrMalformedRule indicates a rule line that is not "int|int".
	ErrMalformedRule = errors.New("pageorder: malformed rule")
	// ErrMalformedUpdate indicates an update line with a non-integer or
	// repeated page.
	ErrMalformedUpdate = errors.New("pageorder: malformed update")
	// ErrCycleDetected indicates the applicable rules contain a cycle.
	ErrCycleDetected = errors.New("pageorder: cycle detected")
)

// Rule requires Before to appear ahead of After.
type Rule struct {
	Before, After int
}

// Manual is a parsed rule set plus its updates.
type Manual struct {
	Rules   []Rule
	Updates [][]int

	succ map[int][]int // Before -> every After, in rule order
}

// Parse splits lines into rules and updates at the first blank line.
// Errors are wrapped with the 1-based line number.
func Parse(lines []string) (*Manual, error) {
	m := &Manual{succ: make(map[int][]int)}
	inRules := true
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			inRules = false
			continue
		}
		if inRules {
			r, err := parseRule(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			m.addRule(r)
			continue
		}
		u, err := parseUpdate(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		m.Updates = append(m.Updates, u)
	}
	return m, nil
}

// NewManual builds a Manual from already-parsed rules and updates.
func NewManual(rules []Rule, updates [][]int) *Manual {
	m := &Manual{succ: make(map[int][]int), Updates: updates}
	for _, r := range rules {
		m.addRule(r)
	}
	return m
}

func (m *Manual) addRule(r Rule) {
	m.Rules = append(m.Rules, r)
	m.succ[r.Before] = append(m.succ[r.Before], r.After)
}

// IsOrdered reports whether update satisfies every applicable rule.
func (m *Manual) IsOrdered(update []int) bool {
	pos := positions(update)
	for _, r := range m.Rules {
		b, okB := pos[r.Before]
		a, okA := pos[r.After]
		if okB && okA && b > a {
			return false
		}
	}
	return true
}

// SumOrderedMiddles adds the middle page of every already-ordered update.
func (m *Manual) SumOrderedMiddles() int {
	sum := 0
	for _, u := range m.Updates {
		if m.IsOrdered(u) {
			sum += Middle(u)
		}
	}
	return sum
}

// SumRepairedMiddles repairs every out-of-order update and adds the middle
// page of each repaired sequence. Ordered updates are skipped.
func (m *Manual) SumRepairedMiddles() (int, error) {
	sum := 0
	for i, u := range m.Updates {
		if m.IsOrdered(u) {
			continue
		}
		fixed, err := m.Repair(u)
		if err != nil {
			return 0, fmt.Errorf("update %d: %w", i+1, err)
		}
		sum += Middle(fixed)
	}
	return sum, nil
}

// Middle returns the centre element of update, or 0 when it is empty.
func Middle(update []int) int {
	if len(update) == 0 {
		return 0
	}
	return update[len(update)/2]
}

func positions(update []int) map[int]int {
	pos := make(map[int]int, len(update))
	for i, p := range update {
		pos[p] = i
	}
	return pos
}

func parseRule(line string) (Rule, error) {
	before, after, ok := strings.Cut(line, "|")
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrMalformedRule, line)
	}
	b, err := strconv.Atoi(strings.TrimSpace(before))
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: %v", ErrMalformedRule, line, err)
	}
	a, err := strconv.Atoi(strings.TrimSpace(after))
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: %v", ErrMalformedRule, line, err)
	}
	return Rule{Before: b, After: a}, nil
}

func parseUpdate(line string) ([]int, error) {
	fields := strings.Split(line, ",")
	pages := make([]int, 0, len(fields))
	seen := make(map[int]struct{}, len(fields))
	for _, f := range fields {
		p, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedUpdate, line, err)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: page %d repeated", ErrMalformedUpdate, p)
		}
		seen[p] = struct{}{}
		pages = append(pages, p)
	}
	return pages, nil
}
