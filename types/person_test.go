package types

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("person variants", func() {
	DescribeTable("fixed access levels",
		func(p Person, want AccessLevel) {
			Expect(p.AccessLevel()).To(Equal(want))
		},
		Entry("student holds basic", NewStudent("alan", "S-001", "mathematics"), LevelBasic),
		Entry("lecturer holds advanced", NewLecturer("karman", "aeronautics"), LevelAdvanced),
		Entry("staff holds full", NewStaff("neumann", "director"), LevelFull),
	)

	DescribeTable("roles",
		func(p Person, want Role) {
			Expect(p.Role()).To(Equal(want))
		},
		Entry("student", NewStudent("alan", "S-001", "mathematics"), RoleStudent),
		Entry("lecturer", NewLecturer("karman", "aeronautics"), RoleLecturer),
		Entry("staff", NewStaff("neumann", "director"), RoleStaff),
	)

	DescribeTable("describe",
		func(p Person, want string) {
			Expect(p.Describe()).To(Equal(want))
		},
		Entry("student", NewStudent("alan", "S-001", "mathematics"), "Student alan, major=mathematics"),
		Entry("lecturer", NewLecturer("karman", "aeronautics"), "Lecturer karman, dept=aeronautics"),
		Entry("staff", NewStaff("neumann", "director"), "Staff neumann, position=director"),
	)

	It("generates a unique id per construction", func() {
		a := NewStudent("alan", "S-001", "mathematics")
		b := NewStudent("alan", "S-001", "mathematics")

		Expect(a.ID()).NotTo(BeEmpty())
		Expect(b.ID()).NotTo(BeEmpty())
		Expect(a.ID()).NotTo(Equal(b.ID()))
	})

	It("keeps variant fields readable", func() {
		s := NewStudent("alan", "S-001", "mathematics")
		Expect(s.Name()).To(Equal("alan"))
		Expect(s.StudentNumber()).To(Equal("S-001"))
		Expect(s.Major()).To(Equal("mathematics"))

		l := NewLecturer("karman", "aeronautics")
		Expect(l.Department()).To(Equal("aeronautics"))

		st := NewStaff("neumann", "director")
		Expect(st.Position()).To(Equal("director"))
	})
})
