// Package input reads puzzle text from a stream.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLine bounds a single input line; puzzle lines are far shorter.
const maxLine = 1 << 20

// ReadLines returns every line of r without line terminators. A trailing
// "\r" is stripped and trailing blank lines are dropped; blank lines in
// the middle are kept because some inputs use them as section breaks.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
