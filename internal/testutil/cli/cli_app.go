// Package cli holds helpers for testing cobra commands against an in-memory board.
// It lives apart from testutil so store and database tests can use testutil
// without importing the command layer.
package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/app"
	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the context so commands skip config loading.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupTestApp must be called first")
	}

	testutil.SetupCobraCommand(cmd, args)
	ctxWithApp := cli.WithApp(ctx, testApp)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}

// ExecuteWithInput is ExecuteCLICommand with stdin replaced by input
func ExecuteWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) (string, error) {
	t.Helper()
	cmd.SetIn(strings.NewReader(input))
	return ExecuteCLICommand(t, testApp, cmd, args)
}
