package testutil

import (
	"fmt"

	"github.com/alexanderramin/cumbre/internal/domain"
)

// CareerOption customizes a test career.
type CareerOption func(*domain.Career)

// WithSubject appends a subject.
func WithSubject(id string, hours float64, state domain.State, year int) CareerOption {
	return func(c *domain.Career) {
		c.Subjects = append(c.Subjects, domain.Subject{
			ID:    id,
			Name:  fmt.Sprintf("Materia %s", id),
			Hours: hours,
			State: state,
			Year:  year,
		})
	}
}

// WithSubjects replaces the subject list.
func WithSubjects(subjects ...domain.Subject) CareerOption {
	return func(c *domain.Career) {
		c.Subjects = append([]domain.Subject{}, subjects...)
	}
}

// NewTestCareer builds a career document. Without options it carries the
// three-subject 80/60/60 scenario (62.5%).
func NewTestCareer(name string, opts ...CareerOption) *domain.Career {
	c := &domain.Career{DisplayName: name, Subjects: []domain.Subject{}}
	for _, opt := range opts {
		opt(c)
	}
	if len(opts) == 0 {
		c.Subjects = ScenarioSubjects()
	}
	return c
}

// ScenarioSubjects is the reference 80h final, 60h cursada, 60h no set.
func ScenarioSubjects() []domain.Subject {
	return []domain.Subject{
		{ID: "m1", Name: "Programación I", Hours: 80, State: domain.StateFinal, Year: 1},
		{ID: "m2", Name: "Matemática", Hours: 60, State: domain.StateCursada, Year: 1},
		{ID: "m3", Name: "Sistemas Operativos", Hours: 60, State: domain.StateNo, Year: 2},
	}
}

// DraftOption customizes a test career draft.
type DraftOption func(*domain.CareerDraft)

// WithDraftSubject appends an editor row.
func WithDraftSubject(name string, hours float64, year int) DraftOption {
	return func(d *domain.CareerDraft) {
		d.Subjects = append(d.Subjects, domain.Subject{Name: name, Hours: hours, Year: year})
	}
}

// NewTestDraft builds an editor draft. Without options it has one valid subject.
func NewTestDraft(name string, opts ...DraftOption) *domain.CareerDraft {
	d := &domain.CareerDraft{Name: name}
	for _, opt := range opts {
		opt(d)
	}
	if len(opts) == 0 {
		d.Subjects = []domain.Subject{{Name: "Introducción", Hours: 64, Year: 1}}
	}
	return d
}
