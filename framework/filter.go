package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter decides whether a test runs. MustNotMatch patterns are matched against the full
// slash-separated test name. MustMatch patterns work like "go test -run": each slash-separated
// element of the pattern is matched against the test name at the same level, so "^create/"
// selects the create group and everything in it, and "/PATCH" selects every second-level test
// with PATCH in its name. A parent test runs if its own levels match, so that its subtests
// get a chance to.
func (r RegexFilters) AsFilter(id TestID) bool {
	if r.MustNotMatch.AnyMatch(id.String()) {
		return false
	}
	return !r.MustMatch.IsDefined() || r.MustMatch.AnyLevelMatch(id.Path)
}

func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

type pattern struct {
	whole  *regexp.Regexp
	levels []*regexp.Regexp
}

type RegexList struct {
	patterns []pattern
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.whole.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	p := pattern{}
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	p.whole = rx
	for _, level := range splitLevels(value) {
		lrx, err := regexp.Compile(level)
		if err != nil {
			return fmt.Errorf("invalid regex %q: %w", level, err)
		}
		p.levels = append(p.levels, lrx)
	}
	r.patterns = append(r.patterns, p)
	return nil
}

// IsCumulative tells the command line parser that the flag can be repeated.
func (r *RegexList) IsCumulative() bool {
	return true
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

// AnyMatch is true if some pattern matches anywhere in s.
func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.whole.MatchString(s) {
			return true
		}
	}
	return false
}

// AnyLevelMatch is true if, for some pattern, every element matches the name at the same
// level of path. Levels beyond the end of the pattern always match.
func (r RegexList) AnyLevelMatch(path []string) bool {
	for _, p := range r.patterns {
		if p.matchLevels(path) {
			return true
		}
	}
	return false
}

func (p pattern) matchLevels(path []string) bool {
	for i := 0; i < len(path) && i < len(p.levels); i++ {
		if !p.levels[i].MatchString(path[i]) {
			return false
		}
	}
	return true
}

// splitLevels splits a pattern at each slash that is not escaped or inside brackets or
// parentheses.
func splitLevels(s string) []string {
	var levels []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case '/':
			if depth == 0 {
				levels = append(levels, s[start:i])
				start = i + 1
			}
		}
	}
	return append(levels, s[start:])
}

func PrintFilterDescription(out io.Writer, filters RegexFilters) {
	if !filters.IsDefined() {
		return
	}
	fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(out)
}
