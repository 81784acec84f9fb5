package domain

// AppState is the in-memory view of the tracker: the selected career, its
// document and the selected year tab. Services take and return it; only
// services and repositories perform I/O.
type AppState struct {
	CareerID     string
	Career       *Career
	SelectedYear string
	Status       string
}

// NewAppState returns a state with an empty, non-nil career.
func NewAppState() *AppState {
	return &AppState{Career: &Career{}}
}

// HasCareer reports whether a career identifier is selected.
func (s *AppState) HasCareer() bool {
	return s.CareerID != ""
}

// Reset clears the selection and leaves an empty career in place.
func (s *AppState) Reset(status string) {
	s.CareerID = ""
	s.Career = &Career{}
	s.Status = status
}
