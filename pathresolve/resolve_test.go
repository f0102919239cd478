package pathresolve_test

import (
	"ramfs/node"
	"ramfs/pathresolve"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resolve", func() {
	var root *node.Node

	BeforeEach(func() {
		root = node.NewRoot()
	})

	It("should resolve the root itself for an empty or slash path when a directory is requested", func() {
		n, err := pathresolve.Resolve(root, "", pathresolve.WantDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(root))

		n, err = pathresolve.Resolve(root, "/", pathresolve.WantDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(root))
	})

	It("should fail to resolve the root as a file", func() {
		_, err := pathresolve.Resolve(root, "", pathresolve.WantFile)
		Expect(err).To(MatchError(pathresolve.ErrNotFound))
	})

	It("should resolve the root for an empty path when either kind is acceptable", func() {
		n, err := pathresolve.Resolve(root, "", pathresolve.WantEither)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(root))
	})

	It("should resolve a direct file child case-insensitively", func() {
		f := node.NewFile("Hello.txt", 64)
		Expect(node.InsertChild(root, f)).To(Succeed())

		n, err := pathresolve.Resolve(root, "hello.TXT", pathresolve.WantFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(f))
	})

	It("should fail when an intermediate segment does not exist (non-recursive creation)", func() {
		_, err := pathresolve.Resolve(root, "a/b/c.bin", pathresolve.WantFile)
		Expect(err).To(MatchError(pathresolve.ErrNotFound))
	})

	It("should fail when an intermediate segment is not a directory", func() {
		f := node.NewFile("a", 64)
		Expect(node.InsertChild(root, f)).To(Succeed())
		_, err := pathresolve.Resolve(root, "a/b.bin", pathresolve.WantFile)
		Expect(err).To(MatchError(pathresolve.ErrNotFound))
	})

	It("should fail on terminal kind mismatch when a specific kind is required", func() {
		d := node.NewDir("sub")
		Expect(node.InsertChild(root, d)).To(Succeed())
		_, err := pathresolve.Resolve(root, "sub", pathresolve.WantFile)
		Expect(err).To(MatchError(pathresolve.ErrNotFound))
	})

	It("should return the node regardless of kind when either is acceptable", func() {
		d := node.NewDir("sub")
		Expect(node.InsertChild(root, d)).To(Succeed())
		n, err := pathresolve.Resolve(root, "sub", pathresolve.WantEither)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(d))

		f := node.NewFile("plain.bin", 64)
		Expect(node.InsertChild(root, f)).To(Succeed())
		n, err = pathresolve.Resolve(root, "plain.bin", pathresolve.WantEither)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(f))
	})

	Describe("SplitParentLeaf", func() {
		It("should use the starting directory as parent when there is no slash", func() {
			parent, leaf, err := pathresolve.SplitParentLeaf(root, "hello.txt")
			Expect(err).NotTo(HaveOccurred())
			Expect(parent).To(Equal(root))
			Expect(leaf).To(Equal("hello.txt"))
		})

		It("should resolve the directory portion and split off the leaf", func() {
			d := node.NewDir("sub")
			Expect(node.InsertChild(root, d)).To(Succeed())
			parent, leaf, err := pathresolve.SplitParentLeaf(root, "sub/file.bin")
			Expect(err).NotTo(HaveOccurred())
			Expect(parent).To(Equal(d))
			Expect(leaf).To(Equal("file.bin"))
		})

		It("should reject an empty leaf", func() {
			_, _, err := pathresolve.SplitParentLeaf(root, "sub/")
			Expect(err).To(MatchError(pathresolve.ErrEmptyLeaf))
			_, _, err = pathresolve.SplitParentLeaf(root, "")
			Expect(err).To(MatchError(pathresolve.ErrEmptyLeaf))
		})
	})
})
