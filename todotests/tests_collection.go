package todotests

import (
	"github.com/todo-backend/todo-contract-tests/servicedef"

	"github.com/onsi/gomega"
)

func DoCollectionTests(t *T) {
	t.Run("lists created items", func(t *T) {
		t.RequireCreated(servicedef.Titled(walkTheDog))
		t.RequireCreated(servicedef.Titled("Feed the cat"))

		resp, err := t.Get(t.BaseURL())
		Expect(t, resp, err).
			To("status", Equal(200)).
			To("body", ContainItemWithTitle(walkTheDog), ContainItemWithTitle("Feed the cat"))
	})

	t.Run("deleting the collection removes every item", func(t *T) {
		resp, err := t.Get(t.BaseURL())
		Expect(t, resp, err)
		if resp.Body.Count() > 0 {
			t.SkipWithReason("collection already has items that this test run did not create")
		}

		itemURL := t.RequireCreated(servicedef.Titled(walkTheDog))

		resp, err = t.Delete(t.BaseURL())
		Expect(t, resp, err).To("status", gomega.BeNumerically("<", 300))

		resp, err = t.Get(t.BaseURL())
		Expect(t, resp, err).To("body", gomega.BeEmpty())

		resp, err = t.Get(itemURL)
		ExpectRejected(t, resp, err, "Not Found")
	})
}
