package ramfs_test

import (
	"ramfs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Open", func() {
	var fs *ramfs.FS

	BeforeEach(func() {
		fs = ramfs.New()
	})

	// Scenario 1: write-create, close, reopen read-only, read back.
	It("should create a file on a writable open of a non-existent path and round-trip its content", func() {
		h, err := fs.Open("hello.txt", ramfs.WriteOnly)
		Expect(err).NotTo(HaveOccurred())

		n, err := fs.Write(h, []byte("hi"))
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(2))
		Expect(fs.Close(h)).To(Succeed())

		h2, err := fs.Open("hello.txt", ramfs.ReadOnly)
		Expect(err).NotTo(HaveOccurred())
		buf := make([]byte, 10)
		n, err = fs.Read(h2, buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(2))
		Expect(buf[:2]).To(Equal([]byte("hi")))
	})

	It("should fail to open a non-existent path read-only", func() {
		_, err := fs.Open("missing.txt", ramfs.ReadOnly)
		Expect(err).To(MatchError(ramfs.ErrNotFound))
	})

	// Scenario 4: creation is not recursive.
	It("should fail to create a file under missing intermediate directories", func() {
		_, err := fs.Open("a/b/c.bin", ramfs.WriteOnly)
		Expect(err).To(MatchError(ramfs.ErrNotFound))
	})

	It("should reject a directory open with a writable mode", func() {
		_, err := fs.Open("", ramfs.Directory|ramfs.WriteOnly)
		Expect(err).To(MatchError(ramfs.ErrInvalid))
	})

	It("should reject a plain open landing on the root directory", func() {
		// The root always resolves as a directory; opening it without
		// the directory flag must fail as invalid (EISDIR-style), not
		// as not-found.
		_, err := fs.Open("", ramfs.ReadOnly)
		Expect(err).To(MatchError(ramfs.ErrInvalid))
	})

	// Boundary: a second writer on an already-open node fails with busy.
	It("should reject a second writer while a writer already holds the node", func() {
		h1, err := fs.Open("x", ramfs.WriteOnly)
		Expect(err).NotTo(HaveOccurred())

		_, err = fs.Open("x", ramfs.WriteOnly)
		Expect(err).To(MatchError(ramfs.ErrBusy))

		Expect(fs.Close(h1)).To(Succeed())
	})

	It("should reject a reader while a writer already holds the node", func() {
		h1, err := fs.Open("x", ramfs.WriteOnly)
		Expect(err).NotTo(HaveOccurred())

		_, err = fs.Open("x", ramfs.ReadOnly)
		Expect(err).To(MatchError(ramfs.ErrBusy))

		Expect(fs.Close(h1)).To(Succeed())
	})

	It("should allow multiple concurrent readers", func() {
		h0, err := fs.Open("x", ramfs.WriteOnly)
		Expect(err).NotTo(HaveOccurred())
		Expect(fs.Close(h0)).To(Succeed())

		h1, err := fs.Open("x", ramfs.ReadOnly)
		Expect(err).NotTo(HaveOccurred())
		h2, err := fs.Open("x", ramfs.ReadOnly)
		Expect(err).NotTo(HaveOccurred())

		Expect(fs.Close(h1)).To(Succeed())
		Expect(fs.Close(h2)).To(Succeed())
	})

	// Scenario 5: directory open and readdir/rewinddir.
	It("should enumerate root children through a directory handle and rewind", func() {
		for _, name := range []string{"a", "b", "c"} {
			h, err := fs.Open(name, ramfs.WriteOnly)
			Expect(err).NotTo(HaveOccurred())
			Expect(fs.Close(h)).To(Succeed())
		}

		dh, err := fs.Open("", ramfs.Directory|ramfs.ReadOnly)
		Expect(err).NotTo(HaveOccurred())

		seen := map[string]bool{}
		for {
			entry, err := fs.ReadDir(dh)
			if err != nil {
				Expect(err).To(MatchError(ramfs.ErrBadHandle))
				break
			}
			seen[entry.Name] = true
		}
		Expect(seen).To(HaveLen(3))

		Expect(fs.RewindDir(dh)).To(Succeed())
		first, err := fs.ReadDir(dh)
		Expect(err).NotTo(HaveOccurred())
		Expect(first).NotTo(BeNil())
	})

	It("should tolerate closing an unknown handle", func() {
		Expect(fs.Close(999)).To(Succeed())
	})

	It("should exhaust the handle table and reject further opens", func() {
		fs = ramfs.New(ramfs.WithMaxHandles(2))
		h, err := fs.Open("a", ramfs.WriteOnly)
		Expect(err).NotTo(HaveOccurred())

		_, err = fs.Open("b", ramfs.WriteOnly)
		Expect(err).To(MatchError(ramfs.ErrTooManyOpenFiles))

		Expect(fs.Close(h)).To(Succeed())
	})
})
