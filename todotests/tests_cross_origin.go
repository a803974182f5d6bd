package todotests

import (
	"github.com/todo-backend/todo-contract-tests/servicedef"
)

func DoCrossOriginTests(t *T) {
	t.Run("returns the CORS headers", func(t *T) {
		resp, err := t.Preflight("http://someplace.com")
		Expect(t, resp, err).To("header", HaveAllKeys(
			servicedef.HeaderAllowOrigin,
			servicedef.HeaderAllowMethods,
			servicedef.HeaderAllowHeaders,
		))
	})

	t.Run("allows all origins", func(t *T) {
		resp, err := t.Preflight("http://someplace.com")
		Expect(t, resp, err).To("header."+servicedef.HeaderAllowOrigin, Equal("*"))
	})

	t.Run("allows all origins regardless of the requesting origin", func(t *T) {
		for _, origin := range []string{"https://example.org", "http://localhost:3000"} {
			resp, err := t.Preflight(origin)
			Expect(t, resp, err).To("header."+servicedef.HeaderAllowOrigin, Equal("*"))
		}
	})
}
