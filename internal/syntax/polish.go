package syntax

// ParsePolishPrefix parses the longest valid polish-notation prefix of s.
// The grammar is the infix one without parentheses: a binary operator is
// immediately followed by its two operands. With no bracket to validate,
// malformed input surfaces only as running out of tokens mid-operand or as
// unconsumed remainder, which total-consumption callers must reject.
func ParsePolishPrefix(s string) (*Formula, string, error) {
	tok, rest := SplitToken(s)

	switch {
	case IsConstant(tok) || IsVariable(tok):
		f, _ := New(tok)
		return f, rest, nil

	case IsUnary(tok):
		operand, r, err := ParsePolishPrefix(rest)
		if err != nil {
			return nil, r, err
		}
		f, _ := New(tok, operand)
		return f, r, nil

	case IsBinary(tok):
		first, r, err := ParsePolishPrefix(rest)
		if err != nil {
			return nil, r, err
		}
		second, r2, err := ParsePolishPrefix(r)
		if err != nil {
			return nil, r2, err
		}
		f, _ := New(tok, first, second)
		return f, r2, nil

	default:
		return nil, s, &ParseError{Context: s}
	}
}

// IsPolishFormula reports whether s is the polish-notation representation of
// some formula, with nothing left over.
func IsPolishFormula(s string) bool {
	f, rest, err := ParsePolishPrefix(s)
	return err == nil && f != nil && rest == ""
}

// ParsePolish parses the polish-notation representation of a formula.
func ParsePolish(s string) (*Formula, error) {
	f, rest, err := ParsePolishPrefix(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		tok, _ := SplitToken(rest)
		return nil, &ParseError{Token: tok, Context: rest}
	}
	return f, nil
}

// MustParsePolish is like ParsePolish but panics on malformed input.
func MustParsePolish(s string) *Formula {
	f, err := ParsePolish(s)
	if err != nil {
		panic(err)
	}
	return f
}
