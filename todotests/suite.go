package todotests

import (
	"github.com/todo-backend/todo-contract-tests/framework"
)

// RunTestSuite runs every scenario group against the service known to the harness.
func RunTestSuite(
	harness *framework.TestHarness,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	logger := framework.LoggerWithPrefix(harness.Logger(), "[suite] ")
	groups := []struct {
		name string
		run  func(*T)
	}{
		{"cross-origin", DoCrossOriginTests},
		{"create", DoCreateTests},
		{"update", DoUpdateTests},
		{"delete", DoDeleteTests},
		{"collection", DoCollectionTests},
	}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, harness)
		for _, g := range groups {
			logger.Printf("starting %s tests against %s", g.name, harness.ServiceURL())
			t.Run(g.name, g.run)
		}
	})
}
