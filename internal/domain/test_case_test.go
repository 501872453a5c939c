package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestCaseMatches(t *testing.T) {
	tests := []struct {
		name     string
		tc       TestCase
		filename string
		expected bool
	}{
		{"exact match", TestCase{Pattern: "ping.txt"}, "ping.txt", true},
		{"exact mismatch", TestCase{Pattern: "ping.txt"}, "ping.txt.part", false},
		{"explicit exact", TestCase{Kind: MatchExact, Pattern: "a.csv"}, "a.csv", true},
		{"glob match", TestCase{Kind: MatchGlob, Pattern: "*.csv"}, "orders.csv", true},
		{"glob mismatch", TestCase{Kind: MatchGlob, Pattern: "*.csv"}, "orders.xml", false},
		{"regex match", TestCase{Kind: MatchRegex, Pattern: `^inv_\d+\.dat$`}, "inv_42.dat", true},
		{"regex mismatch", TestCase{Kind: MatchRegex, Pattern: `^inv_\d+\.dat$`}, "inv_x.dat", false},
		{"bad regex never matches", TestCase{Kind: MatchRegex, Pattern: `(`}, "(", false},
		{"unknown kind never matches", TestCase{Kind: "fuzzy", Pattern: "x"}, "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tc.Matches(tt.filename))
		})
	}
}

func TestTestCaseValidate(t *testing.T) {
	tests := []struct {
		name    string
		tc      TestCase
		wantErr bool
	}{
		{"minimal", TestCase{Name: "ping", Pattern: "ping.txt"}, false},
		{"outgoing target", TestCase{Name: "ok", Pattern: "*.csv", Kind: MatchGlob, Target: TargetOutgoing}, false},
		{"missing name", TestCase{Pattern: "ping.txt"}, true},
		{"missing pattern", TestCase{Name: "ping"}, true},
		{"bad glob", TestCase{Name: "g", Pattern: "[", Kind: MatchGlob}, true},
		{"bad regex", TestCase{Name: "r", Pattern: "(", Kind: MatchRegex}, true},
		{"unknown kind", TestCase{Name: "k", Pattern: "x", Kind: "fuzzy"}, true},
		{"unknown target", TestCase{Name: "t", Pattern: "x", Target: "archive"}, true},
		{"output name with slash", TestCase{Name: "o", Pattern: "x", OutputName: "../x"}, true},
		{"output name dotdot", TestCase{Name: "o", Pattern: "x", OutputName: ".."}, true},
		{"plain output name", TestCase{Name: "o", Pattern: "x", OutputName: "reply.txt"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tc.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTestCase)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOutputFileName_MirrorsArrivalByDefault(t *testing.T) {
	tc := TestCase{Pattern: "ping.txt"}
	assert.Equal(t, "ping.txt", tc.OutputFileName("ping.txt"))

	tc.OutputName = "pong.txt"
	assert.Equal(t, "pong.txt", tc.OutputFileName("ping.txt"))
}

func TestEffectiveTarget_DefaultsToError(t *testing.T) {
	assert.Equal(t, TargetError, TestCase{}.EffectiveTarget())
	assert.Equal(t, TargetError, TestCase{Target: TargetError}.EffectiveTarget())
	assert.Equal(t, TargetOutgoing, TestCase{Target: TargetOutgoing}.EffectiveTarget())
}
