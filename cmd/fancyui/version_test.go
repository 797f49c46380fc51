package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	savedVersion, savedCommit, savedDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = savedVersion, savedCommit, savedDate
	})

	version = "0.4.0"
	commit = "9f3c2ab"
	date = "2026-10-17"

	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Equal(t, "FancyUI 0.4.0\ncommit: 9f3c2ab\nbuilt: 2026-10-17\n", stdout)
}

func TestRootCommandListsSubcommands(t *testing.T) {
	stdout, _, err := executeCommand(t, "--help")
	require.NoError(t, err)

	for _, name := range []string{"resolve", "list", "validate", "demo", "version"} {
		require.Contains(t, stdout, name)
	}
}
