package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formalverse/flin/internal/syntax"
)

func TestParseSubstPairs(t *testing.T) {
	t.Parallel()

	m, err := parseSubstPairs([]string{"p=(q&r)", "x=~y"})
	require.NoError(t, err)
	require.Len(t, m, 2)
	assert.Equal(t, "(q&r)", m["p"].String())
	assert.Equal(t, "~y", m["x"].String())

	_, err = parseSubstPairs([]string{"p"})
	assert.Error(t, err)

	_, err = parseSubstPairs([]string{"p=(q&"})
	assert.Error(t, err)
}

func TestRenameVariables(t *testing.T) {
	t.Parallel()

	f := syntax.MustParse("((x&y)|x)")
	g, err := renameVariables(f, "v")
	require.NoError(t, err)
	assert.Equal(t, "((v1&v2)|v1)", g.String())

	_, err = renameVariables(f, "A")
	assert.Error(t, err, "prefix outside [p-z] cannot form variable names")
}

func TestParseArgument(t *testing.T) {
	t.Parallel()

	f, err := parseArgument("(p->q)", false)
	require.NoError(t, err)
	assert.Equal(t, "->pq", f.Polish())

	f, err = parseArgument("->pq", true)
	require.NoError(t, err)
	assert.Equal(t, "(p->q)", f.String())

	_, err = parseArgument("->pq", false)
	assert.Error(t, err)
}
