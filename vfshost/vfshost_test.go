package vfshost_test

import (
	"ramfs/vfshost"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	var registry *vfshost.Registry

	BeforeEach(func() {
		registry = vfshost.NewRegistry()
	})

	It("should register a table and look it up by name", func() {
		table := vfshost.OpTable{Open: func(string, uint32) (int, error) { return 1, nil }}
		_, err := registry.Register("/ram", table)
		Expect(err).NotTo(HaveOccurred())

		got, ok := registry.Lookup("/ram")
		Expect(ok).To(BeTrue())
		Expect(got.Open).NotTo(BeNil())
		Expect(got.Mkdir).To(BeNil())
	})

	It("should reject a second registration under the same name", func() {
		_, err := registry.Register("/ram", vfshost.OpTable{})
		Expect(err).NotTo(HaveOccurred())

		_, err = registry.Register("/ram", vfshost.OpTable{})
		Expect(err).To(MatchError(vfshost.ErrAlreadyMounted))
	})

	It("should unregister a mount via the returned closure", func() {
		unregister, err := registry.Register("/ram", vfshost.OpTable{})
		Expect(err).NotTo(HaveOccurred())

		unregister()

		_, ok := registry.Lookup("/ram")
		Expect(ok).To(BeFalse())
	})

	It("should fail to unregister a name that was never registered", func() {
		err := registry.Unregister("/missing")
		Expect(err).To(MatchError(vfshost.ErrNotMounted))
	})

	It("should report a miss for an unregistered lookup", func() {
		_, ok := registry.Lookup("/missing")
		Expect(ok).To(BeFalse())
	})

	It("should allow re-registering a name after it is unregistered", func() {
		unregister, err := registry.Register("/ram", vfshost.OpTable{})
		Expect(err).NotTo(HaveOccurred())
		unregister()

		_, err = registry.Register("/ram", vfshost.OpTable{})
		Expect(err).NotTo(HaveOccurred())
	})
})
