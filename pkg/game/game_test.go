package game_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
	"github.com/gnames/gndex/pkg/game"
	"github.com/gnames/gndex/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var games = []schema.Game{
	{ID: 25, Name: "scarlet-violet", ReleaseOrder: 25, Generation: 9},
	{ID: 1, Name: "red-blue", ReleaseOrder: 1, Generation: 1},
	{ID: 2, Name: "yellow", ReleaseOrder: 2, Generation: 1},
	{ID: 5, Name: "ruby-sapphire", ReleaseOrder: 5, Generation: 3},
}

func TestMapper(t *testing.T) {
	m := game.New(games)
	assert.Equal(t, 9, m.Latest())
	assert.True(t, m.Valid(3))
	assert.False(t, m.Valid(2))
	assert.Equal(t, "yellow", m.Game(1))
	assert.Equal(t, "", m.Game(4))
	assert.Equal(t,
		[]string{"red-blue", "yellow", "ruby-sapphire", "scarlet-violet"},
		m.Names())
}

func TestGeneration(t *testing.T) {
	m := game.New(games)

	tests := []struct {
		msg string
		arg string
		gen int
	}{
		{"empty means latest", "", 9},
		{"number", "3", 3},
		{"game name", "Yellow", 1},
		{"trimmed", " ruby-sapphire ", 3},
	}
	for _, v := range tests {
		gen, err := m.Generation(v.arg)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.gen, gen, v.msg)
	}
}

func TestGenerationErrors(t *testing.T) {
	m := game.New(games)

	tests := []struct {
		msg string
		arg string
	}{
		{"missing generation", "2"},
		{"zero", "0"},
		{"unknown game", "yelow"},
	}
	for _, v := range tests {
		_, err := m.Generation(v.arg)
		require.Error(t, err, v.msg)
		assert.True(t, errcode.Is(err, errcode.UnknownGenerationError), v.msg)
	}

	_, err := m.Generation("yelow")
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Contains(t, gnErr.Vars, "potential matches: yellow")

	_, err = game.New(nil).Generation("")
	assert.True(t, errcode.Is(err, errcode.StoreNotReadyError))
}
