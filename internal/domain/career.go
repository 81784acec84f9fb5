package domain

import (
	"fmt"
	"sort"
	"strconv"
)

// Career is a named curriculum: subjects in insertion order plus an optional
// display name. An empty DisplayName means unset.
type Career struct {
	DisplayName string
	Subjects    []Subject
}

// Empty reports whether the career has no subjects.
func (c *Career) Empty() bool {
	return c == nil || len(c.Subjects) == 0
}

// Clone returns a deep copy.
func (c *Career) Clone() *Career {
	if c == nil {
		return &Career{}
	}
	out := &Career{DisplayName: c.DisplayName}
	if c.Subjects != nil {
		out.Subjects = make([]Subject, len(c.Subjects))
		copy(out.Subjects, c.Subjects)
	}
	return out
}

// EqualSubjects compares subject sequences field by field, in order.
func (c *Career) EqualSubjects(other []Subject) bool {
	return SubjectsEqual(c.Subjects, other)
}

// SubjectsEqual is structural equality over two subject sequences.
func SubjectsEqual(a, b []Subject) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Years returns the distinct years present, ascending.
func (c *Career) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, s := range c.Subjects {
		if !seen[s.Year] {
			seen[s.Year] = true
			years = append(years, s.Year)
		}
	}
	sort.Ints(years)
	return years
}

// SubjectsInYear returns the subjects of one year in storage order.
func (c *Career) SubjectsInYear(year int) []Subject {
	var out []Subject
	for _, s := range c.Subjects {
		if s.Year == year {
			out = append(out, s)
		}
	}
	return out
}

// SetState changes one subject's state in place.
func (c *Career) SetState(subjectID string, state State) error {
	for i := range c.Subjects {
		if c.Subjects[i].ID == subjectID {
			c.Subjects[i].State = state
			return nil
		}
	}
	return fmt.Errorf("subject %q: %w", subjectID, ErrSubjectNotFound)
}

// ResolveYear picks the year tab to show. The stored selection wins when the
// career still has subjects in that year; otherwise the first year is used.
// Returns 0 for an empty career.
func (c *Career) ResolveYear(selected string) int {
	years := c.Years()
	if len(years) == 0 {
		return 0
	}
	if y, err := strconv.Atoi(selected); err == nil {
		for _, have := range years {
			if have == y {
				return y
			}
		}
	}
	return years[0]
}

// DefaultCareer is the fallback document used when no definition can be loaded.
func DefaultCareer() *Career {
	return &Career{
		Subjects: []Subject{
			{ID: "s1", Name: "Programación I", Hours: 80, State: StateFinal, Year: 1},
			{ID: "s2", Name: "Matemática", Hours: 60, State: StateCursada, Year: 1},
			{ID: "s3", Name: "Arquitectura de Computadoras", Hours: 48, State: StateNo, Year: 1},
			{ID: "s4", Name: "Sistemas Operativos", Hours: 64, State: StateNo, Year: 1},
			{ID: "s5", Name: "Base de Datos", Hours: 72, State: StateCursando, Year: 1},
			{ID: "s6", Name: "Análisis de Sistemas", Hours: 90, State: StateCursada, Year: 1},
		},
	}
}
