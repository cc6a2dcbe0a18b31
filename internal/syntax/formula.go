package syntax

import (
	"hash/fnv"
	"sort"
	"sync"
)

// Formula is an immutable propositional formula in tree representation: a
// root token plus up to two operand subtrees, with the arity fixed by the
// class of the root. All fields are unexported and assigned only during
// construction; there is no mutating operation, so a single Formula may be
// shared between goroutines and between larger formulas without copying.
//
// Derived values (canonical string, polish form, variable and operator sets)
// are computed at most once per instance and cached.
type Formula struct {
	root   string
	kind   Kind
	first  *Formula
	second *Formula

	strOnce  sync.Once
	str      string
	polOnce  sync.Once
	pol      string
	varsOnce sync.Once
	vars     []string
	opsOnce  sync.Once
	ops      []string
}

// New builds a Formula from a root token and its operands. Constants and
// variables take no operands, the unary operator exactly one, binary
// operators exactly two; anything else fails with an *InvalidArityError.
func New(root string, operands ...*Formula) (*Formula, error) {
	kind := ClassOf(root)

	want := 0
	switch kind {
	case KindUnary:
		want = 1
	case KindBinary:
		want = 2
	case KindInvalid:
		return nil, &InvalidArityError{Root: root, Kind: kind, Got: len(operands)}
	}

	got := len(operands)
	for _, op := range operands {
		if op == nil {
			got--
		}
	}
	if len(operands) != want || got != want {
		return nil, &InvalidArityError{Root: root, Kind: kind, Want: want, Got: got}
	}

	f := &Formula{root: root, kind: kind}
	if want > 0 {
		f.first = operands[0]
	}
	if want > 1 {
		f.second = operands[1]
	}
	return f, nil
}

// rebuild constructs a node whose arity is already known to be valid.
// Internal tree rewrites use it to avoid re-validating what the input
// formula's construction has already established.
func rebuild(root string, kind Kind, first, second *Formula) *Formula {
	return &Formula{root: root, kind: kind, first: first, second: second}
}

// Root returns the constant, variable, or operator at the root of the tree.
func (f *Formula) Root() string { return f.root }

// Kind returns the arity class of the root token.
func (f *Formula) Kind() Kind { return f.kind }

// First returns the first operand, or nil for leaves.
func (f *Formula) First() *Formula { return f.first }

// Second returns the second operand, or nil unless the root is binary.
func (f *Formula) Second() *Formula { return f.second }

// String returns the canonical fully-parenthesized infix representation:
// leaves render as themselves, unary nodes as the operator glued to the
// operand, binary nodes always wrapped in parentheses. This exact shape is
// the parser's input grammar, so String round-trips through Parse.
func (f *Formula) String() string {
	f.strOnce.Do(func() {
		switch f.kind {
		case KindConstant, KindVariable:
			f.str = f.root
		case KindUnary:
			f.str = f.root + f.first.String()
		default:
			f.str = "(" + f.first.String() + f.root + f.second.String() + ")"
		}
	})
	return f.str
}

// Polish returns the prefix-notation representation, with no parentheses.
func (f *Formula) Polish() string {
	f.polOnce.Do(func() {
		switch f.kind {
		case KindConstant, KindVariable:
			f.pol = f.root
		case KindUnary:
			f.pol = f.root + f.first.Polish()
		default:
			f.pol = f.root + f.first.Polish() + f.second.Polish()
		}
	})
	return f.pol
}

// Variables returns the distinct variable names appearing anywhere in the
// formula, sorted. The returned slice is a copy owned by the caller.
func (f *Formula) Variables() []string {
	f.varsOnce.Do(func() {
		acc := make(map[string]struct{})
		collectVariables(f, acc)
		f.vars = sortedKeys(acc)
	})
	return append([]string(nil), f.vars...)
}

func collectVariables(f *Formula, acc map[string]struct{}) {
	switch f.kind {
	case KindConstant:
	case KindVariable:
		acc[f.root] = struct{}{}
	case KindUnary:
		collectVariables(f.first, acc)
	default:
		collectVariables(f.first, acc)
		collectVariables(f.second, acc)
	}
}

// Operators returns the distinct operator tokens appearing anywhere in the
// formula, sorted. Constants count as operators here: T and F are the 0-ary
// symbols of the operator vocabulary. The returned slice is a copy owned by
// the caller.
func (f *Formula) Operators() []string {
	f.opsOnce.Do(func() {
		acc := make(map[string]struct{})
		collectOperators(f, acc)
		f.ops = sortedKeys(acc)
	})
	return append([]string(nil), f.ops...)
}

func collectOperators(f *Formula, acc map[string]struct{}) {
	switch f.kind {
	case KindVariable:
	case KindConstant:
		acc[f.root] = struct{}{}
	case KindUnary:
		acc[f.root] = struct{}{}
		collectOperators(f.first, acc)
	default:
		acc[f.root] = struct{}{}
		collectOperators(f.first, acc)
		collectOperators(f.second, acc)
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether f and other represent the same formula. Equality is
// structural, defined over the canonical string form, so two independently
// parsed trees for the same expression compare equal.
func (f *Formula) Equal(other *Formula) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.String() == other.String()
}

// Hash returns a hash value consistent with Equal.
func (f *Formula) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(f.String()))
	return h.Sum64()
}

// Depth returns the height of the formula tree; leaves have depth 0.
func (f *Formula) Depth() int {
	switch f.kind {
	case KindUnary:
		return 1 + f.first.Depth()
	case KindBinary:
		return 1 + max(f.first.Depth(), f.second.Depth())
	default:
		return 0
	}
}
