package ramfs_test

import (
	"ramfs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Unlink", func() {
	var fs *ramfs.FS

	BeforeEach(func() {
		fs = ramfs.New()
	})

	It("should remove a file with no open handles", func() {
		h, err := fs.Open("f", ramfs.WriteOnly)
		Expect(err).NotTo(HaveOccurred())
		Expect(fs.Close(h)).To(Succeed())

		Expect(fs.Unlink("f")).To(Succeed())
		_, err = fs.Stat("f")
		Expect(err).To(MatchError(ramfs.ErrNotFound))
	})

	It("should refuse to remove a file that is still open", func() {
		h, err := fs.Open("f", ramfs.WriteOnly)
		Expect(err).NotTo(HaveOccurred())

		Expect(fs.Unlink("f")).To(MatchError(ramfs.ErrBusy))
		Expect(fs.Close(h)).To(Succeed())
	})

	It("should refuse to remove a non-existent path", func() {
		Expect(fs.Unlink("nope")).To(MatchError(ramfs.ErrNotFound))
	})

	It("should refuse to remove the root", func() {
		Expect(fs.Unlink("/")).To(MatchError(ramfs.ErrNotFound))
		Expect(fs.Unlink("")).To(MatchError(ramfs.ErrNotFound))
	})

})
