package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Counts returns the number of tests that ran and the number that were skipped. Tests that
// only served as a parent for subtests are counted like any other test.
func (r Results) Counts() (ran, skipped int) {
	for _, t := range r.Tests {
		if t.Skipped {
			skipped++
		} else {
			ran++
		}
	}
	return
}

type TestID struct {
	Path []string
}

// Plus returns a new TestID for a subtest of this one.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes a summary of the test run.
func PrintResults(out io.Writer, results Results) {
	ran, skipped := results.Counts()
	if results.OK() {
		fmt.Fprintln(out, color.GreenString("All tests passed"))
	} else {
		fmt.Fprintln(out, color.RedString("FAILED TESTS (%d):", len(results.Failures)))
		for _, f := range results.Failures {
			fmt.Fprintf(out, "  * %s\n", f.TestID)
		}
	}
	fmt.Fprintf(out, "%d ran, %d failed, %d skipped\n", ran, len(results.Failures), skipped)
}
