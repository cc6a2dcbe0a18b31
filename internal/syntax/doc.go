// Package syntax implements the syntactic core of flin: an immutable
// expression tree for propositional formulas, parsers for the canonical
// fully-parenthesized infix grammar and for polish (prefix) notation, and a
// structural substitution engine.
//
// The grammar recognizes the constants T and F, variables (a lowercase letter
// in 'p'..'z' optionally followed by decimal digits, e.g. x12), the unary
// operator ~ and the binary operators &, | and ->:
//
//	formula := constant | variable | "~" formula | "(" formula binop formula ")"
//
// Polish notation drops the parentheses:
//
//	formula := constant | variable | "~" formula | binop formula formula
//
// Key components:
//
// Formula: the immutable tree node. Once constructed it is never mutated;
// every tree-producing operation returns a new Formula, and subtrees may be
// shared freely between formulas and between goroutines.
//
// ParsePrefix / Parse / IsFormula: recursive-descent parsing of the infix
// grammar. The parser's output grammar is exactly the canonical serializer's
// output, so Parse(s).String() == s for every valid s.
//
// ParsePolishPrefix / ParsePolish / IsPolishFormula: the same contract for
// polish notation.
//
// SubstituteVariables / SubstituteOperators: simultaneous single-pass
// substitution of variables by formulas and of operators by templates over
// the reserved variables p and q.
package syntax
