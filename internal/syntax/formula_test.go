package syntax

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArity(t *testing.T) {
	t.Parallel()

	p := MustParse("p")
	q := MustParse("q")

	tests := []struct {
		name     string
		root     string
		operands []*Formula
		wantErr  bool
	}{
		{"variable leaf", "p", nil, false},
		{"constant leaf", "T", nil, false},
		{"unary with one operand", "~", []*Formula{p}, false},
		{"binary with two operands", "&", []*Formula{p, q}, false},
		{"variable with operand", "p", []*Formula{q}, true},
		{"constant with operand", "F", []*Formula{q}, true},
		{"unary with none", "~", nil, true},
		{"unary with two", "~", []*Formula{p, q}, true},
		{"unary with nil operand", "~", []*Formula{nil}, true},
		{"binary with one", "->", []*Formula{p}, true},
		{"binary with nil second", "|", []*Formula{p, nil}, true},
		{"unknown root", "@", nil, true},
		{"unknown root with operands", "<->", []*Formula{p, q}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.root, tt.operands...)
			if tt.wantErr {
				require.Error(t, err)
				var arityErr *InvalidArityError
				assert.ErrorAs(t, err, &arityErr)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.root, f.Root())
		})
	}
}

func TestStringCanonicalForm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		polish string
		want   string
	}{
		{"p", "p"},
		{"T", "T"},
		{"~x12", "~x12"},
		{"&pq", "(p&q)"},
		{"|~pq", "(~p|q)"},
		{"->p->qr", "(p->(q->r))"},
		{"&&pqr", "((p&q)&r)"},
		{"~~~F", "~~~F"},
	}

	for _, tt := range tests {
		f := MustParsePolish(tt.polish)
		assert.Equal(t, tt.want, f.String())
	}
}

func TestPolishForm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		infix string
		want  string
	}{
		{"p", "p"},
		{"~q7", "~q7"},
		{"(p&q)", "&pq"},
		{"((p->p)|r)", "|->ppr"},
		{"~(T|~z)", "~|T~z"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MustParse(tt.infix).Polish())
	}
}

func TestVariablesAndOperators(t *testing.T) {
	t.Parallel()

	f := MustParse("((p->p)|r)")
	assert.Equal(t, []string{"p", "r"}, f.Variables())
	assert.Equal(t, []string{"->", "|"}, f.Operators())

	g := MustParse("~(T|~z)")
	assert.Equal(t, []string{"z"}, g.Variables())
	// constants count as operators: they are the 0-ary symbols
	assert.ElementsMatch(t, []string{"~", "|", "T"}, g.Operators())

	leaf := MustParse("F")
	assert.Empty(t, leaf.Variables())
	assert.Equal(t, []string{"F"}, leaf.Operators())
}

func TestVariablesReturnsACopy(t *testing.T) {
	t.Parallel()

	f := MustParse("(p&q)")
	vars := f.Variables()
	vars[0] = "corrupted"
	assert.Equal(t, []string{"p", "q"}, f.Variables())
}

func TestEqualAndHash(t *testing.T) {
	t.Parallel()

	a := MustParse("((x&y)&~z)")
	b := MustParse("((x&y)&~z)")
	c := MustParsePolish("&&xy~z")

	// independently parsed trees for the same expression are equal
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(c))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), c.Hash())

	d := MustParse("((x&y)&z)")
	assert.False(t, a.Equal(d))

	assert.False(t, a.Equal(nil))
	var nilFormula *Formula
	assert.True(t, nilFormula.Equal(nil))
}

func TestDepth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, MustParse("p").Depth())
	assert.Equal(t, 1, MustParse("~p").Depth())
	assert.Equal(t, 2, MustParse("(p&~q)").Depth())
	assert.Equal(t, 2, MustParse("((p|q)&~r)").Depth())
	assert.Equal(t, 3, MustParse("((p|q)&~~r)").Depth())
}

func TestDerivedValuesAreRaceFreeToShare(t *testing.T) {
	t.Parallel()

	f := MustParse("((p->q)&~(r|x12))")
	want := f.String()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, f.String())
			assert.Equal(t, "&->pq~|rx12", f.Polish())
			assert.Equal(t, []string{"p", "q", "r", "x12"}, f.Variables())
		}()
	}
	wg.Wait()
}
