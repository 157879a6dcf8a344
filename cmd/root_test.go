package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	root.SetArgs(args)

	var err error
	out := testutil.CaptureOutput(t, func() {
		err = root.ExecuteContext(context.Background())
	})
	return out, err
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"card", "board", "reset", "settings", "export", "stats", "guide"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.Equal(t, Version, root.Version)
}

func TestRoot_PersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JOBZY_DATA_DIR", dir)
	cfg := filepath.Join(dir, "config.yaml")

	id, err := run(t, "card", "add", "--title", "Backend Engineer", "--company", "Acme",
		"--column", "applied", "--quiet", "--config", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	out, err := run(t, "board", "--json", "--config", cfg)
	require.NoError(t, err)

	payload := testutil.ParseJSON(t, out)
	columns, ok := payload["columns"].([]any)
	require.True(t, ok, "columns in %s", out)

	counts := map[string]float64{}
	for _, c := range columns {
		col := c.(map[string]any)
		counts[col["id"].(string)] = col["total"].(float64)
	}
	assert.Equal(t, float64(1), counts["applied"])
	assert.Equal(t, float64(0), counts["job-list"])
}

func TestRoot_ErrorsCarryExitCodes(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JOBZY_DATA_DIR", dir)
	cfg := filepath.Join(dir, "config.yaml")

	_, err := run(t, "card", "show", "nope", "--json", "--config", cfg)
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.True(t, cli.Reported(err))
}
