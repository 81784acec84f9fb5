package domain

// Subject is one curriculum item. Hours doubles as its point value.
type Subject struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
	State State   `json:"state"`
	Year  int     `json:"year"`
}

// Points returns the hours credited for the subject's current state.
func (s Subject) Points() float64 {
	return s.Hours * Weight(s.State)
}
