package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formalverse/flin/check"
)

func TestInitConfigurationFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".flin.yaml")
	require.NoError(t, initConfigurationFile(path))

	engine, err := check.New(path)
	require.NoError(t, err)

	// the sample rewrite template is usable out of the box
	issues, err := engine.RunSource([]byte("(p->q)\n"))
	require.NoError(t, err)
	assert.Empty(t, issues, "default config has no basis, so nothing is flagged")
}
