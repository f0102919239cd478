package fsid_test

import (
	"github.com/google/uuid"

	"ramfs/internal/fsid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ID", func() {
	It("should mint distinct identifiers", func() {
		a, b := fsid.New(), fsid.New()
		Expect(a).NotTo(Equal(b))
	})

	It("should stringify as a parseable UUID", func() {
		id := fsid.New()
		_, err := uuid.Parse(id.String())
		Expect(err).NotTo(HaveOccurred())
	})
})
