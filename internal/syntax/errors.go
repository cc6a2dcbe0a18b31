package syntax

import "fmt"

// InvalidArityError reports a Formula construction whose operands are
// inconsistent with the arity class of the root token. It is a contract
// failure: an ill-formed tree is never silently built.
type InvalidArityError struct {
	Root string
	Kind Kind
	Want int
	Got  int
}

func (e *InvalidArityError) Error() string {
	if e.Kind == KindInvalid {
		return fmt.Sprintf("syntax: root %q is not a constant, variable, or operator", e.Root)
	}
	return fmt.Sprintf("syntax: %s root %q takes %d operand(s), got %d", e.Kind, e.Root, e.Want, e.Got)
}

// ParseError reports malformed formula text. Token is the offending token and
// Context the unconsumed text at the point of failure; Token is empty when no
// prefix of the input matched any grammar rule at all.
type ParseError struct {
	Token   string
	Context string
}

func (e *ParseError) Error() string {
	switch {
	case e.Token == "" && e.Context == "":
		return "syntax: unexpected end of input"
	case e.Token == "":
		return fmt.Sprintf("syntax: unexpected input %q", e.Context)
	default:
		return fmt.Sprintf("syntax: unexpected symbol %q in %q", e.Token, e.Context)
	}
}

// SubstitutionError reports a substitution map that violates the engine's
// preconditions: a key of the wrong token class, a nil replacement, or an
// operator template mentioning variables outside the reserved {p, q}.
type SubstitutionError struct {
	Key    string
	Reason string
}

func (e *SubstitutionError) Error() string {
	return fmt.Sprintf("syntax: substitution key %q: %s", e.Key, e.Reason)
}
