package flin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSourceWithDefaults(t *testing.T) {
	t.Parallel()

	issues, err := CheckSource("", []byte("# header\n(p&q)\n(p&q\n"))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, RuleInvalidFormula, issues[0].Rule)
	assert.Equal(t, 3, issues[0].Line)
}

func TestCheckFileWithConfiguration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".flin.yaml")
	config := `notation: infix
basis: ["~", "&", "|"]
rewrites:
  "->": "(~p|q)"
`
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

	path := filepath.Join(dir, "axioms.prop")
	require.NoError(t, os.WriteFile(path, []byte("(p->q)\n"), 0o644))

	issues, err := CheckFile(configPath, path)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, RuleOperatorBasis, issues[0].Rule)
	assert.Equal(t, "(~p|q)", issues[0].Suggestion)
	assert.Equal(t, path, issues[0].Filename)
}
