// Package mulscan extracts multiplication instructions from corrupted text.
//
// Only exact "mul(A,B)" sequences with decimal operands count; anything
// else is noise. "do()" and "don't()" toggle whether later multiplications
// contribute to a conditional sum. Multiplications start enabled.
package mulscan

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrOperand indicates an operand that does not fit in an int64.
var ErrOperand = errors.New("mulscan: operand out of range")

// Kind identifies an instruction token.
type Kind int

const (
	Mul Kind = iota
	Do
	Dont
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Mul:
		return "mul"
	case Do:
		return "do"
	case Dont:
		return "don't"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one recognised instruction. A and B are set for Mul only.
type Token struct {
	Kind   Kind
	Offset int // byte offset of the token in the input
	A, B   int64
}

var instruction = regexp.MustCompile(`mul\((\d+),(\d+)\)|do\(\)|don't\(\)`)

// Scan returns the instructions in input order.
func Scan(input string) ([]Token, error) {
	var tokens []Token
	for _, m := range instruction.FindAllStringSubmatchIndex(input, -1) {
		text := input[m[0]:m[1]]
		switch {
		case text == "do()":
			tokens = append(tokens, Token{Kind: Do, Offset: m[0]})
		case text == "don't()":
			tokens = append(tokens, Token{Kind: Dont, Offset: m[0]})
		default:
			a, err := operand(input[m[2]:m[3]])
			if err != nil {
				return nil, fmt.Errorf("offset %d: %w", m[0], err)
			}
			b, err := operand(input[m[4]:m[5]])
			if err != nil {
				return nil, fmt.Errorf("offset %d: %w", m[0], err)
			}
			tokens = append(tokens, Token{Kind: Mul, Offset: m[0], A: a, B: b})
		}
	}
	return tokens, nil
}

// Sum adds every product, ignoring do() and don't().
func Sum(input string) (int64, error) {
	return sum(input, false)
}

// SumConditional adds only the products enabled by the latest toggle.
func SumConditional(input string) (int64, error) {
	return sum(input, true)
}

func sum(input string, conditional bool) (int64, error) {
	tokens, err := Scan(input)
	if err != nil {
		return 0, err
	}
	var total int64
	enabled := true
	for _, t := range tokens {
		switch t.Kind {
		case Do:
			enabled = true
		case Dont:
			enabled = false
		case Mul:
			if enabled || !conditional {
				total += t.A * t.B
			}
		}
	}
	return total, nil
}

func operand(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrOperand, s)
	}
	return v, nil
}
