package inmemory_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/marginaliaco/annotate/pkg/annotation"
	"github.com/marginaliaco/annotate/pkg/store/inmemory"
)

var _ = Describe("Driver", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("starts empty", func() {
		driver := inmemory.NewDriver()
		annotations, err := driver.Load(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(annotations).To(BeEmpty())
	})

	It("appends in order", func() {
		driver := inmemory.NewDriver()
		Expect(driver.Append(ctx, annotation.Annotation{Content: "a", CreatedAt: 1})).To(Succeed())
		Expect(driver.Append(ctx, annotation.Annotation{Content: "b", CreatedAt: 2})).To(Succeed())

		annotations, err := driver.Load(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(annotations).To(Equal([]annotation.Annotation{
			{Content: "a", CreatedAt: 1},
			{Content: "b", CreatedAt: 2},
		}))
	})

	It("replaces the collection on save", func() {
		driver := inmemory.NewDriverWith([]annotation.Annotation{
			{Content: "a", CreatedAt: 1},
			{Content: "b", CreatedAt: 2},
		})

		Expect(driver.Save(ctx, []annotation.Annotation{{Content: "b", CreatedAt: 2}})).To(Succeed())

		annotations, err := driver.Load(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(annotations).To(Equal([]annotation.Annotation{{Content: "b", CreatedAt: 2}}))
	})

	It("returns copies that do not alias internal state", func() {
		driver := inmemory.NewDriverWith([]annotation.Annotation{{Content: "a", CreatedAt: 1}})

		first, err := driver.Load(ctx)
		Expect(err).NotTo(HaveOccurred())
		first[0].Content = "mutated"

		second, err := driver.Load(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(second[0].Content).To(Equal("a"))
	})
})
