//go:build e2e && unix

package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	// Help exits immediately, so no PTY is needed
	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "Usage")
	require.Contains(t, output, "workshoplist [catalog]")
	require.Contains(t, output, "--query")
	require.Contains(t, output, "list")
}

func TestListCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	catalog, err := tf.CreateCatalog("workshops.yaml", mixedTitles()...)
	require.NoError(t, err)

	cmd := exec.Command(binPath, "list", catalog, "-q", "go", "-p", "2")
	cmd.Dir = workspace
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "list should succeed: %s", out)

	output := string(out)
	require.Contains(t, output, "Go Workshop 15")
	require.NotContains(t, output, "Rust")
	require.Contains(t, output, "Previous 1 [2] Next")
	require.Contains(t, output, "Showing 9-12 of 12")
}
