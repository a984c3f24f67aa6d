package fault_test

import (
	"io"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ume/fault"
)

var _ = Describe("Assertf", func() {
	It("does not abort when the condition holds", func() {
		Expect(func() {
			fault.Assertf(true, "test", "unreachable: %d", 1)
		}).NotTo(Panic())
	})

	It("terminates through Exit rather than panicking or returning an error", func() {
		orig := fault.Exit
		defer func() { fault.Exit = orig }()

		var code int
		fault.Exit = func(c int) { code = c }

		Expect(func() {
			fault.Assertf(false, "test", "condition failed: %d", 2)
		}).NotTo(Panic())
		Expect(code).To(Equal(1))
	})

	It("prefixes the diagnostic with the component tag", func() {
		orig := fault.Exit
		defer func() { fault.Exit = orig }()
		fault.Exit = func(int) {}

		r, w, err := os.Pipe()
		Expect(err).NotTo(HaveOccurred())
		origStderr := os.Stderr
		os.Stderr = w
		defer func() { os.Stderr = origStderr }()

		Expect(func() {
			fault.Abortf("widget", "bad value %d", 9)
		}).NotTo(Panic())
		os.Stderr = origStderr
		Expect(w.Close()).To(Succeed())

		out, err := io.ReadAll(r)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal("widget: bad value 9\n"))
	})
})
