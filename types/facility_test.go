package types

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("facility variants", func() {
	DescribeTable("required levels",
		func(f Facility, want AccessLevel) {
			Expect(f.RequiredLevel()).To(Equal(want))
		},
		Entry("building demands basic", NewBuilding("main hall"), LevelBasic),
		Entry("room demands basic", NewRoom("lecture room 101"), LevelBasic),
		Entry("laboratory demands advanced", NewLaboratory("chemistry lab"), LevelAdvanced),
	)

	DescribeTable("default info rendering",
		func(f Facility, want string) {
			Expect(f.Info()).To(Equal(want))
		},
		Entry("building", NewBuilding("main hall"), "Facility: main hall"),
		Entry("room", NewRoom("lecture room 101"), "Facility: lecture room 101"),
		Entry("laboratory", NewLaboratory("chemistry lab"), "Facility: chemistry lab"),
	)

	It("generates a unique id per construction", func() {
		a := NewRoom("lecture room 101")
		b := NewRoom("lecture room 101")

		Expect(a.ID()).NotTo(BeEmpty())
		Expect(a.ID()).NotTo(Equal(b.ID()))
	})
})
