package domain

import (
	"fmt"
	"strings"
)

// CustomKeyPrefix marks career identifiers that live in the custom catalog.
const CustomKeyPrefix = "custom_"

// CustomCareer is a user-authored career stored in the custom catalog.
// ID is stable for the life of the entry; deleting other entries never
// changes it.
type CustomCareer struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Subjects []Subject `json:"subjects"`
}

// Key returns the external career identifier of the entry.
func (c *CustomCareer) Key() string {
	return CustomKey(c.ID)
}

// Career converts the entry into a career document (deep copy).
func (c *CustomCareer) Career() *Career {
	doc := &Career{DisplayName: c.Name, Subjects: make([]Subject, len(c.Subjects))}
	copy(doc.Subjects, c.Subjects)
	return doc
}

// CustomKey builds the career identifier for a catalog entry id.
func CustomKey(id string) string {
	return CustomKeyPrefix + id
}

// IsCustomKey reports whether a career identifier refers to the custom catalog.
func IsCustomKey(careerID string) bool {
	return strings.HasPrefix(careerID, CustomKeyPrefix)
}

// CustomIDFromKey strips the custom prefix. ok is false for non-custom keys.
func CustomIDFromKey(careerID string) (id string, ok bool) {
	if !IsCustomKey(careerID) {
		return "", false
	}
	return strings.TrimPrefix(careerID, CustomKeyPrefix), true
}

// CareerDraft is the editable form of a custom career before it is committed.
type CareerDraft struct {
	Name     string
	Subjects []Subject
}

// DraftFrom builds a pre-filled draft from an existing career. The copy gets
// a "(Copia)" suffix.
func DraftFrom(name string, c *Career) *CareerDraft {
	d := &CareerDraft{Name: fmt.Sprintf("%s (Copia)", name)}
	if c != nil {
		d.Subjects = make([]Subject, len(c.Subjects))
		copy(d.Subjects, c.Subjects)
	}
	return d
}

// ValidationError identifies one offending field. Index is the 1-based
// subject position, or 0 for career-level fields.
type ValidationError struct {
	Field string
	Index int
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("subject #%d %s: %s", e.Index, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// ValidationErrors collects every problem found in a draft.
type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	msg := fmt.Sprintf("career validation failed (%d errors):", len(es))
	for _, e := range es {
		msg += "\n  - " + e.Error()
	}
	return msg
}

// Validate checks the draft without modifying it. A nil return means the
// draft can be committed.
func (d *CareerDraft) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Msg: "is required"})
	}
	if len(d.Subjects) == 0 {
		errs = append(errs, ValidationError{Field: "subjects", Msg: "at least one subject is required"})
	}

	for i, s := range d.Subjects {
		pos := i + 1
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, ValidationError{Field: "name", Index: pos, Msg: "is required"})
		}
		if s.Hours < 1 {
			errs = append(errs, ValidationError{Field: "hours", Index: pos, Msg: "must be at least 1"})
		}
		if s.Year < 1 {
			errs = append(errs, ValidationError{Field: "year", Index: pos, Msg: "must be at least 1"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Normalized returns a committed-form copy: names trimmed, missing states set
// to "no", missing ids filled with custom_s<n>.
func (d *CareerDraft) Normalized() *CareerDraft {
	out := &CareerDraft{
		Name:     strings.TrimSpace(d.Name),
		Subjects: make([]Subject, len(d.Subjects)),
	}
	used := make(map[string]bool, len(d.Subjects))
	for _, s := range d.Subjects {
		if s.ID != "" {
			used[s.ID] = true
		}
	}
	next := 0
	for i, s := range d.Subjects {
		s.Name = strings.TrimSpace(s.Name)
		if s.State == "" {
			s.State = StateNo
		}
		if s.ID == "" {
			for {
				candidate := fmt.Sprintf("custom_s%d", next)
				next++
				if !used[candidate] {
					s.ID = candidate
					used[candidate] = true
					break
				}
			}
		}
		out.Subjects[i] = s
	}
	return out
}
