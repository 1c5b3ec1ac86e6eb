package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/internal/iotesting"
	"github.com/gnames/gndex/pkg/coverage"
	"github.com/gnames/gndex/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--color=false"))
	err := cmd.Execute()
	return buf.String(), err
}

// setupDataset creates and populates a dataset in a temporary home.
func setupDataset(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI end-to-end test in short mode")
	}
	iotesting.SetupTempHome(t)
	dump := iotesting.WriteDump(t)

	_, err := run(t, "", "create")
	require.NoError(t, err)
	_, err = run(t, "", "populate", dump, "--quiet")
	require.NoError(t, err)
	_, err = run(t, "", "optimize")
	require.NoError(t, err)
}

func TestCommands(t *testing.T) {
	setupDataset(t)

	tests := []struct {
		msg      string
		args     []string
		contains []string
	}{
		{
			"pokemon",
			[]string{"pokemon", "blaziken", "--evolution"},
			[]string{"Blaziken fire fighting regular\n", "combusken (level 16)"},
		},
		{
			"pokemon in old game",
			[]string{"pokemon", "clefairy", "-g", "red-blue"},
			[]string{"Clefairy normal", "gen-1 (yellow)"},
		},
		{
			"move",
			[]string{"move", "quick-attack", "--game", "1"},
			[]string{"Quick Attack normal physical", "power: 30 "},
		},
		{
			"ability",
			[]string{"ability", "speed-boost"},
			[]string{"Speed Boost\n"},
		},
		{
			"type",
			[]string{"type", "ghost", "-g", "red-blue"},
			[]string{"Ghost gen-1", "0x normal psychic"},
		},
		{
			"match",
			[]string{"match", "flygon", "blaziken"},
			[]string{"flygon weaknesses\n4x ice", "blaziken's moves vs flygon"},
		},
		{
			"resource",
			[]string{"resource", "types", "-d", " "},
			[]string{"normal fighting flying"},
		},
	}

	for _, v := range tests {
		out, err := run(t, "", v.args...)
		require.NoError(t, err, v.msg)
		for _, s := range v.contains {
			assert.Contains(t, out, s, v.msg)
		}
	}
}

func TestCoverageCmd(t *testing.T) {
	setupDataset(t)

	roster := filepath.Join(t.TempDir(), "team.txt")
	err := os.WriteFile(roster, []byte("# team\nflygon\n\n"), 0644)
	require.NoError(t, err)

	out, err := run(t, "", "coverage", "blaziken", "-f", roster, "--format", "json")
	require.NoError(t, err)

	var tbl coverage.Table
	require.NoError(t, json.Unmarshal([]byte(out), &tbl))
	assert.Equal(t, 9, tbl.Generation)
	require.Len(t, tbl.Roster, 2)
	assert.Equal(t, "blaziken", tbl.Roster[0].Name)
	assert.Equal(t, "flygon", tbl.Roster[1].Name)
}

func TestCustomPokemonCmd(t *testing.T) {
	setupDataset(t)

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	content := `pokemon:
  - nickname: sandy
    base: blaziken
    generation: 3
    moves: [surf, ice-beam]
    types: [water]
`
	require.NoError(t, os.WriteFile(custom, []byte(content), 0644))
	t.Setenv("GNDEX_CUSTOM_PATH", custom)

	out, err := run(t, "", "pokemon", "sandy")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Sandy water regular\n"))

	out, err = run(t, "", "match", "flygon", "sandy")
	require.NoError(t, err)
	assert.Contains(t, out, "sandy's moves vs flygon\n")
	assert.Contains(t, out, "ice-beam")

	out, err = run(t, "", "coverage", "sandy", "flygon", "--format", "json")
	require.NoError(t, err)
	var tbl coverage.Table
	require.NoError(t, json.Unmarshal([]byte(out), &tbl))
	require.Len(t, tbl.Roster, 2)
	assert.Equal(t, "water", tbl.Roster[0].Typing.Primary)

	require.NoError(t, os.WriteFile(custom, []byte("pokemon: [nickname: {"), 0644))
	_, err = run(t, "", "pokemon", "sandy")
	assert.True(t, errcode.Is(err, errcode.ParseFileError))
}

func TestCreateCmd_Confirmation(t *testing.T) {
	setupDataset(t)

	_, err := run(t, "no\n", "create")
	require.NoError(t, err)

	out, err := run(t, "", "resource", "games", "-d", ",")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "red-blue,yellow,gold-silver"),
		"declined create keeps the data")

	_, err = run(t, "yes\n", "create")
	require.NoError(t, err)

	_, err = run(t, "", "pokemon", "blaziken")
	assert.True(t, errcode.Is(err, errcode.StoreNotReadyError),
		"confirmed create drops the data")
}

func TestCommandErrors(t *testing.T) {
	setupDataset(t)

	tests := []struct {
		msg  string
		args []string
		code gn.ErrorCode
	}{
		{"unknown pokemon", []string{"pokemon", "unknown-mon"},
			errcode.NotFoundError},
		{"unknown game", []string{"move", "bite", "-g", "stadium"},
			errcode.UnknownGenerationError},
		{"unknown resource", []string{"resource", "berries"},
			errcode.InvalidInputError},
		{"empty roster", []string{"coverage"},
			errcode.InvalidInputError},
	}

	for _, v := range tests {
		_, err := run(t, "", v.args...)
		require.Error(t, err, v.msg)
		assert.True(t, errcode.Is(err, v.code), v.msg)
	}
}
