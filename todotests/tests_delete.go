package todotests

import (
	"github.com/todo-backend/todo-contract-tests/servicedef"
)

func DoDeleteTests(t *T) {
	t.Run("returns a 204 No Content response", func(t *T) {
		itemURL := t.RequireCreated(servicedef.Titled(walkTheDog))

		resp, err := t.Delete(itemURL)
		Expect(t, resp, err).To("status", Equal(204))
	})

	t.Run("deletes the item", func(t *T) {
		itemURL := t.RequireCreated(servicedef.Titled(walkTheDog))

		resp, err := t.Delete(itemURL)
		Expect(t, resp, err)

		resp, err = t.Get(itemURL)
		ExpectRejected(t, resp, err, "Not Found")
	})
}
