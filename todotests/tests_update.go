package todotests

import (
	"github.com/todo-backend/todo-contract-tests/servicedef"
)

func DoUpdateTests(t *T) {
	t.Run("completed is true after PUT update", func(t *T) {
		itemURL := t.RequireCreated(servicedef.Titled(walkTheDog))

		resp, err := t.Put(itemURL, servicedef.Completed(true))
		Expect(t, resp, err).To("body.completed", BeTrue())
	})

	t.Run("completed is true after PATCH update", func(t *T) {
		itemURL := t.RequireCreated(servicedef.Titled(walkTheDog))

		resp, err := t.Patch(itemURL, servicedef.Completed(true))
		Expect(t, resp, err).To("body.completed", BeTrue())
	})

	t.Run("repeating a PATCH update leaves completed true", func(t *T) {
		itemURL := t.RequireCreated(servicedef.Titled(walkTheDog))

		for i := 0; i < 2; i++ {
			resp, err := t.Patch(itemURL, servicedef.Completed(true))
			Expect(t, resp, err).To("body.completed", BeTrue())
		}

		resp, err := t.Get(itemURL)
		Expect(t, resp, err).To("body.completed", BeTrue())
	})

	t.Run("PATCH can change the title", func(t *T) {
		itemURL := t.RequireCreated(servicedef.Titled(walkTheDog))

		resp, err := t.Patch(itemURL, servicedef.Titled("Feed the cat"))
		Expect(t, resp, err).To("body.title", Equal("Feed the cat"))

		resp, err = t.Get(itemURL)
		Expect(t, resp, err).To("body.title", Equal("Feed the cat"))
	})
}
