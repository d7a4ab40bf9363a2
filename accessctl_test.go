package accessctl

import (
	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/campuskit/accessctl/internal/grant"
	"github.com/campuskit/accessctl/types"
)

// recordingAudit collects audit lines in call order
type recordingAudit struct {
	lines []string
}

func (r *recordingAudit) Log(message string) {
	r.lines = append(r.lines, message)
}

var _ = Describe("manager construction", func() {
	var (
		rec *recordingAudit

		student *types.Student
		lab     *types.Laboratory
	)

	BeforeEach(func() {
		rec = &recordingAudit{}
		student = types.NewStudent("alan", "S-001", "mathematics")
		lab = types.NewLaboratory("chemistry lab")
	})

	It("wires defaults with an audit sink only", func() {
		m := New(
			WithAuditLogger(rec),
			WithLogger(logr.Discard()),
		)

		Expect(m.RequestAccess(student, lab)).To(BeFalse())

		m.GrantAccess(student, lab)
		Expect(m.RequestAccess(student, lab)).To(BeTrue())

		m.RevokeAccess(student, lab)
		Expect(m.RequestAccess(student, lab)).To(BeFalse())

		Expect(rec.lines).To(HaveLen(5))
	})

	It("accepts a substituted policy", func() {
		m := New(
			WithPolicy(SuperUser(student.ID())),
			WithAuditLogger(rec),
			WithLogger(logr.Discard()),
		)

		Expect(m.RequestAccess(student, lab)).To(BeTrue())

		other := types.NewStudent("godel", "S-002", "logic")
		Expect(m.RequestAccess(other, lab)).To(BeFalse())
	})

	It("accepts a shared grant store", func() {
		s := grant.NewSynced(grant.NewStore())
		m := New(
			WithGrantStore(s),
			WithAuditLogger(rec),
			WithLogger(logr.Discard()),
		)

		m.GrantAccess(student, lab)
		Expect(s.Has(types.Grant{PersonID: student.ID(), FacilityID: lab.ID()})).To(BeTrue())
	})
})
