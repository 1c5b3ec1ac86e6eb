package suggest_test

import (
	"fmt"
	"testing"

	"github.com/gnames/gndex/pkg/suggest"
	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	names := []string{"pikachu", "raichu", "pichu", "blaziken", "flygon", "goodra"}

	tests := []struct {
		msg  string
		name string
		res  []string
	}{
		{"substring", "chu", []string{"pikachu", "raichu", "pichu"}},
		{"typo", "blazikn", []string{"blaziken"}},
		{"case and space", " FLYGON ", []string{"flygon"}},
		{"far away", "mewtwo-x", nil},
		{"empty", "", nil},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, suggest.Matches(v.name, names), v.msg)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "no potential matches", suggest.Format(nil))
	assert.Equal(t, "potential matches: a, b", suggest.Format([]string{"a", "b"}))

	var many []string
	for i := range suggest.MaxShown + 1 {
		many = append(many, fmt.Sprintf("n%d", i))
	}
	assert.Equal(t, "too many potential matches to display", suggest.Format(many))
}
