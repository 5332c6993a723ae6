// Package reports classifies sequences of levels as safe or unsafe.
//
// A report is safe when its levels are strictly increasing or strictly
// decreasing and every adjacent pair differs by 1 to MaxStep inclusive.
// With the dampener, a report is also safe if removing any single level
// makes it safe.
package reports

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxStep is the largest allowed difference between adjacent levels.
const MaxStep = 3

// ErrMalformedReport indicates a report line with a non-integer field.
var ErrMalformedReport = errors.New("reports: malformed report")

// ParseReport splits a whitespace-separated line into levels.
func ParseReport(line string) ([]int, error) {
	fields := strings.Fields(line)
	levels := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedReport, line, err)
		}
		levels = append(levels, v)
	}
	return levels, nil
}

// IsSafe reports whether levels are strictly monotonic with every step in
// [1, MaxStep]. Reports with fewer than two levels are safe.
func IsSafe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	increasing := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !increasing {
			d = -d
		}
		if d < 1 || d > MaxStep {
			return false
		}
	}
	return true
}

// IsSafeDampened reports whether levels are safe as they stand or after
// removing exactly one level.
// Complexity: O(n²).
func IsSafeDampened(levels []int) bool {
	if IsSafe(levels) {
		return true
	}
	trimmed := make([]int, 0, len(levels))
	for skip := range levels {
		trimmed = trimmed[:0]
		trimmed = append(trimmed, levels[:skip]...)
		trimmed = append(trimmed, levels[skip+1:]...)
		if IsSafe(trimmed) {
			return true
		}
	}
	return false
}

// CountSafe parses every non-blank line and counts the safe reports,
// applying the dampener when dampened is set.
func CountSafe(lines []string, dampened bool) (int, error) {
	check := IsSafe
	if dampened {
		check = IsSafeDampened
	}
	n := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		levels, err := ParseReport(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if check(levels) {
			n++
		}
	}
	return n, nil
}
