package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteVariables(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		formula string
		m       map[string]*Formula
		want    string
	}{
		{
			name:    "single-pass, replacement content is not re-substituted",
			formula: "(p|r)",
			m:       map[string]*Formula{"p": MustParse("(q&r)"), "r": MustParse("p")},
			want:    "((q&r)|p)",
		},
		{
			name:    "swap without looping",
			formula: "(p&q)",
			m:       map[string]*Formula{"p": MustParse("q"), "q": MustParse("p")},
			want:    "(q&p)",
		},
		{
			name:    "every occurrence is replaced",
			formula: "((p->p)|r)",
			m:       map[string]*Formula{"p": MustParse("(q&r)")},
			want:    "(((q&r)->(q&r))|r)",
		},
		{
			name:    "constants and unmapped variables untouched",
			formula: "(T&~x)",
			m:       map[string]*Formula{"p": MustParse("F")},
			want:    "(T&~x)",
		},
		{
			name:    "empty map is the identity",
			formula: "~(p|q)",
			m:       map[string]*Formula{},
			want:    "~(p|q)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := MustParse(tt.formula)
			got, err := f.SubstituteVariables(tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			// the receiver is never mutated
			assert.Equal(t, tt.formula, f.String())
		})
	}
}

func TestSubstituteVariablesContract(t *testing.T) {
	t.Parallel()

	f := MustParse("(p&q)")
	var substErr *SubstitutionError

	_, err := f.SubstituteVariables(map[string]*Formula{"&": MustParse("p")})
	require.ErrorAs(t, err, &substErr)
	assert.Equal(t, "&", substErr.Key)

	_, err = f.SubstituteVariables(map[string]*Formula{"T": MustParse("p")})
	assert.ErrorAs(t, err, &substErr)

	_, err = f.SubstituteVariables(map[string]*Formula{"p": nil})
	assert.ErrorAs(t, err, &substErr)
}

func TestSubstituteOperators(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		formula string
		m       map[string]*Formula
		want    string
	}{
		{
			name:    "conjunction via nor-style template, composed depth-first",
			formula: "((x&y)&~z)",
			m:       map[string]*Formula{"&": MustParse("~(~p|~q)")},
			want:    "~(~~(~x|~y)|~~z)",
		},
		{
			name:    "implication eliminated",
			formula: "(p->q)",
			m:       map[string]*Formula{"->": MustParse("(~p|q)")},
			want:    "(~p|q)",
		},
		{
			name:    "unary operator template binds p only",
			formula: "~x",
			m:       map[string]*Formula{"~": MustParse("(p->F)")},
			want:    "(x->F)",
		},
		{
			name:    "constant replaced by closed template",
			formula: "(T|x)",
			m:       map[string]*Formula{"T": MustParse("~F")},
			want:    "(~F|x)",
		},
		{
			name:    "operators inside a replacement are not reprocessed",
			formula: "(p|q)",
			m:       map[string]*Formula{"|": MustParse("(p|~q)")},
			want:    "(p|~q)",
		},
		{
			name:    "unmapped operators rebuilt unchanged",
			formula: "(~p&(q->r))",
			m:       map[string]*Formula{"|": MustParse("(p&q)")},
			want:    "(~p&(q->r))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := MustParse(tt.formula)
			got, err := f.SubstituteOperators(tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.formula, f.String())
		})
	}
}

func TestSubstituteOperatorsContract(t *testing.T) {
	t.Parallel()

	f := MustParse("(p&q)")
	var substErr *SubstitutionError

	// keys must be constants or operators, never variables
	_, err := f.SubstituteOperators(map[string]*Formula{"p": MustParse("q")})
	require.ErrorAs(t, err, &substErr)
	assert.Equal(t, "p", substErr.Key)

	// templates may only mention the reserved variables p and q
	_, err = f.SubstituteOperators(map[string]*Formula{"&": MustParse("(p|r)")})
	require.ErrorAs(t, err, &substErr)
	assert.Contains(t, substErr.Reason, `"r"`)

	_, err = f.SubstituteOperators(map[string]*Formula{"&": nil})
	assert.ErrorAs(t, err, &substErr)
}

func TestSubstituteChaining(t *testing.T) {
	t.Parallel()

	// rewrite into the {~, |} basis, then rename the variables apart
	f := MustParse("((x&y)->z)")
	g, err := f.SubstituteOperators(map[string]*Formula{
		"&":  MustParse("~(~p|~q)"),
		"->": MustParse("(~p|q)"),
	})
	require.NoError(t, err)
	assert.Equal(t, "(~~(~x|~y)|z)", g.String())
	assert.NotContains(t, g.Operators(), "&")
	assert.NotContains(t, g.Operators(), "->")

	h, err := g.SubstituteVariables(map[string]*Formula{
		"x": MustParse("v1"),
		"y": MustParse("v2"),
		"z": MustParse("v3"),
	})
	require.NoError(t, err)
	assert.Equal(t, "(~~(~v1|~v2)|v3)", h.String())
}
