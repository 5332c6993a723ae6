// Package listdist compares two paired lists of integers.
//
// Input is one pair per line ("3   4"). TotalDistance pairs the lists
// smallest-to-smallest and sums the absolute differences; Similarity
// weights each left value by how often it occurs in the right list.
package listdist

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for list parsing and comparison.
var (
	// ErrMalformedPair indicates a line that is not two integers.
	ErrMalformedPair = errors.New("listdist: malformed pair")
	// ErrLengthMismatch indicates lists of different lengths.
	ErrLengthMismatch = errors.New("listdist: lists differ in length")
)

// ParsePairs reads two columns of integers. Blank lines are skipped.
func ParsePairs(lines []string) (left, right []int, err error) {
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: %w: %q", i+1, ErrMalformedPair, line)
		}
		l, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w: %v", i+1, ErrMalformedPair, err)
		}
		r, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w: %v", i+1, ErrMalformedPair, err)
		}
		left = append(left, l)
		right = append(right, r)
	}
	return left, right, nil
}

// TotalDistance sorts copies of both lists and sums |left[i]-right[i]|.
func TotalDistance[T constraints.Signed](left, right []T) (T, error) {
	if len(left) != len(right) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(left), len(right))
	}
	l, r := slices.Clone(left), slices.Clone(right)
	slices.Sort(l)
	slices.Sort(r)
	var sum T
	for i := range l {
		sum += abs(l[i] - r[i])
	}
	return sum, nil
}

// Similarity sums each left value multiplied by its number of occurrences
// in right. The lists may differ in length.
func Similarity[T constraints.Integer](left, right []T) T {
	counts := make(map[T]T, len(right))
	for _, v := range right {
		counts[v]++
	}
	var sum T
	for _, v := range left {
		sum += v * counts[v]
	}
	return sum
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
