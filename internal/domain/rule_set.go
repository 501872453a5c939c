package domain

import (
	"regexp"
	"sort"
)

// RuleSet is the ordered, read-only snapshot of a root's test cases taken at
// session start
type RuleSet struct {
	cases  []TestCase
	rootID uint
}

// LoadRuleSet keeps the cases owned by root, ordered by position then id.
// Cases belonging to other roots are dropped.
func LoadRuleSet(root Root, cases []TestCase) RuleSet {
	owned := make([]TestCase, 0, len(cases))
	for _, tc := range cases {
		if tc.RootID != root.ID {
			continue
		}
		if tc.kind() == MatchRegex {
			if re, err := regexp.Compile(tc.Pattern); err == nil {
				tc.re = re
			}
		}
		owned = append(owned, tc)
	}

	sort.SliceStable(owned, func(i, j int) bool {
		if owned[i].Position != owned[j].Position {
			return owned[i].Position < owned[j].Position
		}
		return owned[i].ID < owned[j].ID
	})

	return RuleSet{cases: owned, rootID: root.ID}
}

// Match returns the first test case whose predicate accepts filename
func (rs RuleSet) Match(filename string) (TestCase, bool) {
	for i := range rs.cases {
		if rs.cases[i].Matches(filename) {
			return rs.cases[i], true
		}
	}
	return TestCase{}, false
}

// Len returns the number of test cases in the set
func (rs RuleSet) Len() int { return len(rs.cases) }
