package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hummus-finance/toolchain/pkg/testutils"
	"github.com/hummus-finance/toolchain/pkg/toolchain"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesTemplate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")
	app := testutils.NewTestApp(nil, InitCommand)

	require.NoError(t, app.Run("init", dir))

	vars, err := godotenv.Read(filepath.Join(dir, ".env.example"))
	require.NoError(t, err)
	for _, key := range []string{
		toolchain.EnvAlchemyAPI,
		toolchain.EnvRinkebyAPI,
		toolchain.EnvKovanAPI,
		toolchain.EnvAccountPrivateKeys,
		toolchain.EnvForkMainnet,
		toolchain.EnvReportGas,
	} {
		v, ok := vars[key]
		assert.True(t, ok, key)
		assert.Empty(t, v, key)
	}

	// an all-empty template builds the defaults
	cfg, err := toolchain.Build(toolchain.EnvFromMap(vars))
	require.NoError(t, err)
	assert.False(t, cfg.GasReporter.Enabled)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.example")
	require.NoError(t, os.WriteFile(path, []byte("KEEP=1\n"), 0644))

	app := testutils.NewTestApp(nil, InitCommand)
	require.ErrorContains(t, app.Run("init", dir), "already exists")

	app = testutils.NewTestApp(nil, InitCommand)
	require.NoError(t, app.Run("init", "--force", dir))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "KEEP=1")
}
