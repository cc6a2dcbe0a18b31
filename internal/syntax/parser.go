package syntax

import "strings"

// ParsePrefix parses the longest valid formula prefix of s and returns the
// parsed formula together with the unconsumed remainder. On failure the
// formula is nil and the error is a *ParseError describing the point of
// failure; the returned remainder is the input at that point.
func ParsePrefix(s string) (*Formula, string, error) {
	tok, rest := SplitToken(s)

	switch {
	case IsConstant(tok) || IsVariable(tok):
		f, _ := New(tok)
		return f, rest, nil

	case IsUnary(tok):
		operand, r, err := ParsePrefix(rest)
		if err != nil {
			return nil, r, err
		}
		f, _ := New(tok, operand)
		return f, r, nil

	case tok == "(":
		first, r, err := ParsePrefix(rest)
		if err != nil {
			return nil, r, err
		}

		op, r2 := SplitToken(r)
		if !IsBinary(op) {
			return nil, r, &ParseError{Token: op, Context: r}
		}

		second, r3, err := ParsePrefix(r2)
		if err != nil {
			return nil, r3, err
		}

		if !strings.HasPrefix(r3, ")") {
			closing, _ := SplitToken(r3)
			return nil, r3, &ParseError{Token: closing, Context: r3}
		}

		f, _ := New(op, first, second)
		return f, r3[1:], nil

	default:
		return nil, s, &ParseError{Context: s}
	}
}

// IsFormula reports whether s is the canonical string representation of some
// formula. The whole input must be consumed: a valid formula followed by
// trailing text, such as "p)" or "(p&q)extra", is rejected.
func IsFormula(s string) bool {
	f, rest, err := ParsePrefix(s)
	return err == nil && f != nil && rest == ""
}

// Parse parses the canonical string representation of a formula.
func Parse(s string) (*Formula, error) {
	f, rest, err := ParsePrefix(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		tok, _ := SplitToken(rest)
		return nil, &ParseError{Token: tok, Context: rest}
	}
	return f, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// fixtures, templates, and tests.
func MustParse(s string) *Formula {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}
