package syntax

import "fmt"

// Reserved template variables for operator substitution: p stands for the
// first operand of the substituted node and q for the second.
const (
	TemplateFirst  = "p"
	TemplateSecond = "q"
)

// SubstituteVariables returns a new formula in which every variable leaf
// whose name is a key in m has been replaced by the mapped formula. All
// replacements happen simultaneously in a single pass over the receiver:
// variables introduced by a replacement are never substituted again, so a
// map like {p: q, q: p} swaps p and q instead of expanding forever.
//
// Every key must be a variable token and every replacement non-nil;
// otherwise a *SubstitutionError is returned.
func (f *Formula) SubstituteVariables(m map[string]*Formula) (*Formula, error) {
	for v, g := range m {
		if !IsVariable(v) {
			return nil, &SubstitutionError{Key: v, Reason: "not a variable"}
		}
		if g == nil {
			return nil, &SubstitutionError{Key: v, Reason: "nil replacement"}
		}
	}
	return substituteVariables(f, m), nil
}

func substituteVariables(f *Formula, m map[string]*Formula) *Formula {
	switch f.kind {
	case KindConstant:
		return f
	case KindVariable:
		if g, ok := m[f.root]; ok {
			return g
		}
		return f
	case KindUnary:
		return rebuild(f.root, f.kind, substituteVariables(f.first, m), nil)
	default:
		return rebuild(f.root, f.kind,
			substituteVariables(f.first, m),
			substituteVariables(f.second, m))
	}
}

// SubstituteOperators returns a new formula in which every constant or
// operator that is a key in m has been replaced by the mapped template, with
// the template's reserved variables p and q bound to the node's operands.
//
// Children are substituted before their parent, so replacements compose
// depth-first: by the time a node's own template is instantiated, its
// operands are already fully rewritten. Each p and q occurrence inside a
// template is bound exactly once to a whole subtree and never reprocessed.
// For example, substituting {&: ~(~p|~q)} into ((x&y)&~z) yields
// ~(~~(~x|~y)|~~z).
//
// Every key must be a constant, unary, or binary token, every template
// non-nil, and every template's variables a subset of {p, q}; otherwise a
// *SubstitutionError is returned.
func (f *Formula) SubstituteOperators(m map[string]*Formula) (*Formula, error) {
	for op, tmpl := range m {
		switch ClassOf(op) {
		case KindConstant, KindUnary, KindBinary:
		default:
			return nil, &SubstitutionError{Key: op, Reason: "not a constant or operator"}
		}
		if tmpl == nil {
			return nil, &SubstitutionError{Key: op, Reason: "nil template"}
		}
		for _, v := range tmpl.Variables() {
			if v != TemplateFirst && v != TemplateSecond {
				return nil, &SubstitutionError{
					Key:    op,
					Reason: fmt.Sprintf("template uses variable %q outside {p, q}", v),
				}
			}
		}
	}
	return substituteOperators(f, m), nil
}

func substituteOperators(f *Formula, m map[string]*Formula) *Formula {
	var out *Formula
	switch f.kind {
	case KindConstant, KindVariable:
		out = f
	case KindUnary:
		out = rebuild(f.root, f.kind, substituteOperators(f.first, m), nil)
	default:
		out = rebuild(f.root, f.kind,
			substituteOperators(f.first, m),
			substituteOperators(f.second, m))
	}

	if out.kind == KindVariable {
		return out
	}
	tmpl, ok := m[out.root]
	if !ok {
		return out
	}

	binding := make(map[string]*Formula, 2)
	if out.first != nil {
		binding[TemplateFirst] = out.first
	}
	if out.second != nil {
		binding[TemplateSecond] = out.second
	}
	return substituteVariables(tmpl, binding)
}
