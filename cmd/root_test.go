package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRootCmd_Exists verifies getRootCmd returns
// a valid command.
func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "gndex", cmd.Use,
		"Command name should be gndex")
}

// TestGetRootCmd_VersionFormat verifies version
// output format.
func TestGetRootCmd_VersionFormat(t *testing.T) {
	tests := []struct {
		msg  string
		flag string
	}{
		{"long flag", "--version"},
		{"short flag", "-V"},
	}

	for _, v := range tests {
		cmd := getRootCmd()
		cmd.Version = "version: v1.2.3\nbuild:   abc123"

		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{v.flag})

		err := cmd.Execute()
		require.NoError(t, err, v.msg)

		output := buf.String()
		assert.Contains(t, output, "v1.2.3", v.msg)
		assert.Contains(t, output, "abc123", v.msg)
	}
}

// TestGetRootCmd_Subcommands verifies all subcommands are registered.
func TestGetRootCmd_Subcommands(t *testing.T) {
	cmd := getRootCmd()
	var names []string
	for _, v := range cmd.Commands() {
		names = append(names, v.Name())
	}
	for _, v := range []string{
		"pokemon", "move", "ability", "type", "match",
		"coverage", "resource", "create", "populate", "optimize",
	} {
		assert.Contains(t, names, v)
	}
}

// TestGetRootCmd_Flags verifies persistent and command flags.
func TestGetRootCmd_Flags(t *testing.T) {
	cmd := getRootCmd()
	assert.NotNil(t, cmd.PersistentFlags().Lookup("format"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("color"))

	tests := []struct {
		cmd   string
		flags []string
	}{
		{"pokemon", []string{"game", "evolution", "moves"}},
		{"move", []string{"game"}},
		{"type", []string{"game"}},
		{"match", []string{"game", "stab-only", "verbose"}},
		{"coverage", []string{"game", "file"}},
		{"resource", []string{"delimiter"}},
		{"create", []string{"force"}},
		{"populate", []string{"batch-size", "quiet"}},
	}

	for _, v := range tests {
		sub, _, err := cmd.Find([]string{v.cmd})
		require.NoError(t, err, v.cmd)
		for _, f := range v.flags {
			assert.NotNil(t, sub.Flags().Lookup(f), "%s --%s", v.cmd, f)
		}
	}
}

// TestGetRootCmd_HelpText verifies help text content.
func TestGetRootCmd_HelpText(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "gndex")
	assert.Contains(t, helpText, "GNDEX_STORE_BACKEND")
	assert.Contains(t, helpText, "coverage")
}
