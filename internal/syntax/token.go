package syntax

import "sync"

// Token vocabulary. Everything besides these tokens, variables, and the two
// parentheses is rejected by the tokenizer consumers.
const (
	OpNot     = "~"
	OpAnd     = "&"
	OpOr      = "|"
	OpImplies = "->"

	ConstTrue  = "T"
	ConstFalse = "F"
)

// Kind identifies the arity class of a root token.
type Kind int

const (
	KindInvalid Kind = iota
	KindConstant
	KindVariable
	KindUnary
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindVariable:
		return "variable"
	case KindUnary:
		return "unary operator"
	case KindBinary:
		return "binary operator"
	default:
		return "invalid"
	}
}

const classCacheLimit = 128

// Classification results for recently seen tokens. Purely an optimization:
// classify is cheap, but parsers ask about the same handful of tokens over
// and over. Eviction timing is unspecified and callers must not rely on it.
var classCache = struct {
	sync.RWMutex
	m map[string]Kind
}{m: make(map[string]Kind, classCacheLimit)}

// ClassOf reports the token class of s, or KindInvalid if s is not a
// constant, variable, or operator token.
func ClassOf(s string) Kind {
	classCache.RLock()
	k, ok := classCache.m[s]
	classCache.RUnlock()
	if ok {
		return k
	}

	k = classify(s)

	classCache.Lock()
	if len(classCache.m) >= classCacheLimit {
		classCache.m = make(map[string]Kind, classCacheLimit)
	}
	classCache.m[s] = k
	classCache.Unlock()

	return k
}

func classify(s string) Kind {
	switch s {
	case ConstTrue, ConstFalse:
		return KindConstant
	case OpNot:
		return KindUnary
	case OpAnd, OpOr, OpImplies:
		return KindBinary
	}
	if isVariableName(s) {
		return KindVariable
	}
	return KindInvalid
}

// A variable is a lowercase letter in 'p'..'z' optionally followed by one or
// more decimal digits, e.g. p, q7, x12.
func isVariableName(s string) bool {
	if s == "" || s[0] < 'p' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsVariable reports whether s is a variable token.
func IsVariable(s string) bool { return ClassOf(s) == KindVariable }

// IsConstant reports whether s is the constant T or F.
func IsConstant(s string) bool { return ClassOf(s) == KindConstant }

// IsUnary reports whether s is the unary operator ~.
func IsUnary(s string) bool { return ClassOf(s) == KindUnary }

// IsBinary reports whether s is one of the binary operators &, | and ->.
func IsBinary(s string) bool { return ClassOf(s) == KindBinary }

// SplitToken splits the single longest valid leading token off s and returns
// it together with the unconsumed remainder. A leading '-' is only ever the
// start of the two-character token "->", so it is taken with the following
// character; a leading variable letter greedily consumes its whole digit
// suffix, so "x12&y" splits into "x12" and "&y", never "x1" and "2&y".
// An empty input yields ("", s).
func SplitToken(s string) (prefix, rest string) {
	if s == "" {
		return "", s
	}

	n := 1
	if s[0] == '-' && len(s) > 1 {
		n = 2
	}
	prefix, rest = s[:n], s[n:]

	if IsVariable(prefix) {
		m := 0
		for m < len(rest) && rest[m] >= '0' && rest[m] <= '9' {
			m++
		}
		prefix, rest = prefix+rest[:m], rest[m:]
	}

	return prefix, rest
}
