package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()
	valid := []string{
		"p",
		"z",
		"x12",
		"T",
		"F",
		"~p",
		"~~~x",
		"(p&q)",
		"(p|q)",
		"(p->q)",
		"((p->p)|r)",
		"((x&y)&~z)",
		"~(~p|~q)",
		"(T->(F|~x7))",
		"(((p&q)|(r&s))->~t)",
	}

	for _, s := range valid {
		f, err := Parse(s)
		require.NoError(t, err, "input %q", s)
		// the parser's input grammar is exactly the serializer's output
		assert.Equal(t, s, f.String(), "round trip of %q", s)
	}
}

func TestIsFormula(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  bool
	}{
		{"p", true},
		{"(p&q)", true},
		{"~(p->q)", true},
		{"x12", true},
		{"", false},
		{"p)", false},         // trailing garbage
		{"(p&q)extra", false}, // trailing garbage
		{"p~q", false},
		{"(p&q", false},  // missing closing paren
		{"(pq)", false},  // missing binary operator
		{"(p&&q)", false},
		{"p&q", false},   // binary requires parentheses
		{"()", false},
		{"(~p)", false},  // unary is never parenthesized by the grammar
		{"A", false},
		{"-p", false},
		{"->", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsFormula(tt.input), "input %q", tt.input)
		// purity: asking again always agrees
		assert.Equal(t, tt.want, IsFormula(tt.input), "input %q (repeat)", tt.input)
	}
}

func TestParseVariableGreediness(t *testing.T) {
	t.Parallel()

	f, err := Parse("x12")
	require.NoError(t, err)
	assert.Equal(t, KindVariable, f.Kind())
	assert.Equal(t, "x12", f.Root())
	assert.Nil(t, f.First())
}

func TestParsePrefixRemainder(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		str   string
		rest  string
	}{
		{"p)", "p", ")"},
		{"(p&q)extra", "(p&q)", "extra"},
		{"~pq", "~p", "q"},
		{"T|F", "T", "|F"},
	}

	for _, tt := range tests {
		f, rest, err := ParsePrefix(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.str, f.String())
		assert.Equal(t, tt.rest, rest)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError

	// missing binary operator: the offending token is reported
	_, _, err := ParsePrefix("(pq)")
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "q", parseErr.Token)
	assert.Contains(t, err.Error(), "unexpected symbol")

	// no grammar rule matches the leading text
	_, _, err = ParsePrefix("&p")
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "", parseErr.Token)
	assert.Contains(t, err.Error(), "unexpected input")

	// missing closing parenthesis
	_, _, err = ParsePrefix("(p&q")
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "unexpected end of input")

	// trailing garbage is only an error for the whole-input entry points
	_, err = Parse("p)")
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ")", parseErr.Token)
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { MustParse("(p->q)") })
	assert.Panics(t, func() { MustParse("p&q") })
}
