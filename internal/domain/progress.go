package domain

import "math"

// Totals is the outcome of a progress computation.
type Totals struct {
	TotalCapacity float64
	EarnedValue   float64
	Percentage    float64
	SubjectCount  int
}

// Complete reports whether the rounded percentage reached 100.
func (t Totals) Complete() bool {
	return math.Round(t.Percentage) >= 100
}

// Compute sums capacity and weighted hours over every subject.
// Percentage is 0 when capacity is 0.
func Compute(c *Career) Totals {
	if c == nil {
		return Totals{}
	}
	return computeSubjects(c.Subjects)
}

// ComputeYear restricts Compute to one year.
func ComputeYear(c *Career, year int) Totals {
	if c == nil {
		return Totals{}
	}
	return computeSubjects(c.SubjectsInYear(year))
}

func computeSubjects(subjects []Subject) Totals {
	var t Totals
	for _, s := range subjects {
		t.TotalCapacity += s.Hours
		t.EarnedValue += s.Points()
		t.SubjectCount++
	}
	if t.TotalCapacity != 0 {
		t.Percentage = t.EarnedValue / t.TotalCapacity * 100
	}
	return t
}
