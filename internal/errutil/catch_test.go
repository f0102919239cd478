package errutil_test

import (
	"ramfs/internal/errutil"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/cockroachdb/errors"
)

var _ = Describe("Catch", func() {
	It("should short-circuit after the first error by default", func() {
		c := errutil.New()
		calls := 0
		c.Exec(func() error { calls++; return errors.New("boom") })
		c.Exec(func() error { calls++; return nil })
		Expect(calls).To(Equal(1))
		Expect(c.Error()).To(HaveOccurred())
	})

	It("should keep running every step when aggregation is enabled", func() {
		c := errutil.New(errutil.WithAggregation())
		calls := 0
		c.Exec(func() error { calls++; return errors.New("first") })
		c.Exec(func() error { calls++; return errors.New("second") })
		c.Exec(func() error { calls++; return nil })
		Expect(calls).To(Equal(3))
		Expect(c.Error()).To(HaveOccurred())
	})

	It("should return nil when every step succeeds", func() {
		c := errutil.New()
		c.Exec(func() error { return nil })
		Expect(c.Error()).To(BeNil())
	})
})
