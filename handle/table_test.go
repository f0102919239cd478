package handle_test

import (
	"ramfs/handle"
	"ramfs/node"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Table", func() {
	It("should never allocate handle 0", func() {
		t := handle.New(4)
		n := node.NewFile("a", 8)
		h, err := t.Alloc(n, false, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(h).To(BeNumerically(">=", 1))
	})

	It("should exhaust after filling every usable slot", func() {
		t := handle.New(3) // slot 0 reserved, 1 and 2 usable
		n := node.NewFile("a", 8)
		_, err := t.Alloc(n, false, 0)
		Expect(err).NotTo(HaveOccurred())
		_, err = t.Alloc(n, false, 0)
		Expect(err).NotTo(HaveOccurred())
		_, err = t.Alloc(n, false, 0)
		Expect(err).To(MatchError(handle.ErrExhausted))
	})

	It("should reuse a freed slot", func() {
		t := handle.New(3)
		n := node.NewFile("a", 8)
		h1, _ := t.Alloc(n, false, 0)
		t.Free(h1)
		h2, err := t.Alloc(n, false, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(h2).To(Equal(h1))
	})

	It("should tolerate freeing an invalid or already-free handle", func() {
		t := handle.New(3)
		Expect(func() { t.Free(0) }).NotTo(Panic())
		Expect(func() { t.Free(99) }).NotTo(Panic())
		Expect(func() { t.Free(1) }).NotTo(Panic())
	})

	It("should count occupied slots referring to a node", func() {
		t := handle.New(4)
		n := node.NewFile("a", 8)
		h1, _ := t.Alloc(n, false, 0)
		h2, _ := t.Alloc(n, false, 0)
		Expect(handle.CountForNode(t, n)).To(Equal(2))
		t.Free(h1)
		Expect(handle.CountForNode(t, n)).To(Equal(1))
		t.Free(h2)
		Expect(handle.CountForNode(t, n)).To(Equal(0))
	})

	It("should report Get as false for out-of-range or free handles", func() {
		t := handle.New(3)
		_, ok := t.Get(0)
		Expect(ok).To(BeFalse())
		_, ok = t.Get(99)
		Expect(ok).To(BeFalse())
		_, ok = t.Get(1)
		Expect(ok).To(BeFalse())
	})
})
