package shim_test

import (
	"testing"

	"errors"

	"github.com/sclevine/spec"

	shim "github.com/heroku/cnb-shim"
)

func TestError(t *testing.T) {
	spec.Run(t, "Test Error", testError)
}

func testError(t *testing.T, when spec.G, it spec.S) {
	when("#Cause", func() {
		it("returns the first error", func() {
			expectedErr := errors.New("root cause")
			testErr := &shim.Error{
				Errors: []error{expectedErr, errors.New("another")},
			}

			cause := testErr.Cause()

			if cause != expectedErr {
				t.Fatalf("Unexpected cause:\n%s\n", cause)
			}
		})

		it("returns handles nil state", func() {
			testErr := &shim.Error{}

			if testErr.Cause() != nil {
				t.Fatalf("Unexpected cause:\n%s\n", testErr.Cause())
			}
		})
	})

	when("#IsBadRequest", func() {
		it("reports bad-request errors", func() {
			err := shim.NewBadRequestError(errors.New("bad id"))

			if !shim.IsBadRequest(err) {
				t.Fatal("Expected a bad-request error")
			}
		})

		it("reports service errors as not bad-request", func() {
			err := shim.NewServiceError(errors.New("disk full"))

			if shim.IsBadRequest(err) {
				t.Fatal("Expected a service error")
			}
		})

		it("reports untagged errors as not bad-request", func() {
			if shim.IsBadRequest(errors.New("anything")) {
				t.Fatal("Expected an untagged error to not be bad-request")
			}
		})
	})
}
