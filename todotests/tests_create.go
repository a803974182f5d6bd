package todotests

import (
	"github.com/todo-backend/todo-contract-tests/servicedef"
)

const (
	walkTheDog = "Walk the dog"

	itemURLPattern = `^https?://.+/todos/[0-9]+$`
)

func DoCreateTests(t *T) {
	t.Run("returns a 201 Created response", func(t *T) {
		resp, err := t.Create(servicedef.Titled(walkTheDog))
		Expect(t, resp, err).To("status", Equal(201))
	})

	t.Run("returns a Location hyperlink", func(t *T) {
		resp, err := t.Create(servicedef.Titled(walkTheDog))
		Expect(t, resp, err).To("header.location", MatchPattern(itemURLPattern))
	})

	t.Run("creates the item", func(t *T) {
		itemURL := t.RequireCreated(servicedef.Titled(walkTheDog))

		resp, err := t.Get(itemURL)
		Expect(t, resp, err).To("body.title", Equal(walkTheDog))
	})

	t.Run("new item is not completed", func(t *T) {
		itemURL := t.RequireCreated(servicedef.Titled(walkTheDog))

		resp, err := t.Get(itemURL)
		Expect(t, resp, err).To("body.completed", Equal(false))
	})
}
