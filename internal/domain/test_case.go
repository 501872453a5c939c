package domain

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

// MatchKind selects how a test case pattern is compared against a filename
type MatchKind string

const (
	MatchExact MatchKind = "exact"
	MatchGlob  MatchKind = "glob"
	MatchRegex MatchKind = "regex"
)

// Target names the root directory a test case writes into
type Target string

const (
	TargetError    Target = "error"
	TargetOutgoing Target = "outgoing"
)

// TestCase is a filename rule with literal output content
type TestCase struct {
	Content    []byte
	CreatedAt  time.Time
	ID         uint
	Kind       MatchKind
	Name       string
	OutputName string
	Pattern    string
	Position   int
	RootID     uint
	Target     Target

	re *regexp.Regexp
}

// Validate checks the pattern compiles for its kind and that the target and
// output name are usable
func (tc TestCase) Validate() error {
	if tc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTestCase)
	}
	if tc.Pattern == "" {
		return fmt.Errorf("%w: pattern is required", ErrInvalidTestCase)
	}

	switch tc.kind() {
	case MatchExact:
	case MatchGlob:
		if _, err := path.Match(tc.Pattern, ""); err != nil {
			return fmt.Errorf("%w: bad glob %q: %v", ErrInvalidTestCase, tc.Pattern, err)
		}
	case MatchRegex:
		if _, err := regexp.Compile(tc.Pattern); err != nil {
			return fmt.Errorf("%w: bad regex %q: %v", ErrInvalidTestCase, tc.Pattern, err)
		}
	default:
		return fmt.Errorf("%w: unknown match kind %q", ErrInvalidTestCase, tc.Kind)
	}

	switch tc.Target {
	case "", TargetError, TargetOutgoing:
	default:
		return fmt.Errorf("%w: unknown target %q", ErrInvalidTestCase, tc.Target)
	}

	if strings.ContainsAny(tc.OutputName, `/\`) || tc.OutputName == "." || tc.OutputName == ".." {
		return fmt.Errorf("%w: output name %q must be a plain file name", ErrInvalidTestCase, tc.OutputName)
	}
	return nil
}

// Matches reports whether filename satisfies the test case predicate.
// Invalid patterns never match.
func (tc *TestCase) Matches(filename string) bool {
	switch tc.kind() {
	case MatchExact:
		return filename == tc.Pattern
	case MatchGlob:
		ok, err := path.Match(tc.Pattern, filename)
		return err == nil && ok
	case MatchRegex:
		if tc.re == nil {
			re, err := regexp.Compile(tc.Pattern)
			if err != nil {
				return false
			}
			tc.re = re
		}
		return tc.re.MatchString(filename)
	}
	return false
}

// EffectiveTarget returns the target with the error directory as default
func (tc TestCase) EffectiveTarget() Target {
	if tc.Target == TargetOutgoing {
		return TargetOutgoing
	}
	return TargetError
}

// OutputFileName mirrors the arrived file name unless the test case overrides it
func (tc TestCase) OutputFileName(arrived string) string {
	if tc.OutputName != "" {
		return tc.OutputName
	}
	return arrived
}

func (tc TestCase) kind() MatchKind {
	if tc.Kind == "" {
		return MatchExact
	}
	return tc.Kind
}
