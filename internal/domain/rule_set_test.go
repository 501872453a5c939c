package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSetMatch_FirstMatchWins(t *testing.T) {
	root := Root{ID: 1}
	rs := LoadRuleSet(root, []TestCase{
		{ID: 1, RootID: 1, Name: "any csv", Kind: MatchGlob, Pattern: "*.csv"},
		{ID: 2, RootID: 1, Name: "orders", Pattern: "orders.csv"},
	})

	tc, ok := rs.Match("orders.csv")

	require.True(t, ok)
	assert.Equal(t, "any csv", tc.Name, "later rules must not be evaluated after a match")
}

func TestRuleSetMatch_NoMatch(t *testing.T) {
	rs := LoadRuleSet(Root{ID: 1}, []TestCase{
		{ID: 1, RootID: 1, Name: "ping", Pattern: "ping.txt"},
	})

	_, ok := rs.Match("other.txt")

	assert.False(t, ok)
}

func TestLoadRuleSet_OrdersByPositionThenID(t *testing.T) {
	rs := LoadRuleSet(Root{ID: 1}, []TestCase{
		{ID: 3, RootID: 1, Name: "c", Position: 0},
		{ID: 1, RootID: 1, Name: "a", Position: 1},
		{ID: 2, RootID: 1, Name: "b", Position: 0},
	})

	names := make([]string, 0, rs.Len())
	for _, tc := range rs.cases {
		names = append(names, tc.Name)
	}
	assert.Equal(t, []string{"b", "c", "a"}, names)
}

// Test cases of other roots never match
func TestLoadRuleSet_FiltersByOwningRoot(t *testing.T) {
	rs := LoadRuleSet(Root{ID: 1}, []TestCase{
		{ID: 1, RootID: 2, Name: "foreign", Pattern: "ping.txt"},
		{ID: 2, RootID: 1, Name: "own", Pattern: "pong.txt"},
	})

	require.Equal(t, 1, rs.Len())
	_, ok := rs.Match("ping.txt")
	assert.False(t, ok, "test cases of another root must not match")
}

func TestLoadRuleSet_PrecompilesRegex(t *testing.T) {
	rs := LoadRuleSet(Root{ID: 1}, []TestCase{
		{ID: 1, RootID: 1, Name: "dat", Kind: MatchRegex, Pattern: `\.dat$`},
	})

	tc, ok := rs.Match("x.dat")

	require.True(t, ok)
	assert.Equal(t, "dat", tc.Name)
}
