package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRootCommand_ShowsHelpWhenNoSubcommand tests that the root command
// shows help instead of silently succeeding when invoked without a subcommand
func TestRootCommand_ShowsHelpWhenNoSubcommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	// Empty (non-nil) args, otherwise cobra falls back to os.Args from the
	// test binary
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()

	assert.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Usage:", "Help should be displayed")
	assert.Contains(t, output, "warren", "Help should show command name")
	assert.Contains(t, output, "check", "Help should list the check subcommand")
	assert.Contains(t, output, "list", "Help should list the list subcommand")
}

// TestRootCommand_RejectsUnknownFlags tests that unknown flags passed to the
// root command cause an error instead of being silently ignored
func TestRootCommand_RejectsUnknownFlags(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--unknown-flag", "value"})

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")

	// Reset args so later tests see a clean root command
	rootCmd.SetArgs([]string{})
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	assert.Equal(t, "1.2.3 (commit: abc123, built: 2026-01-01)", rootCmd.Version)
}
