package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/repository"
)

type progressService struct {
	progress  repository.ProgressRepo
	selection repository.SelectionRepo
}

func NewProgressService(progress repository.ProgressRepo, selection repository.SelectionRepo) ProgressService {
	return &progressService{progress: progress, selection: selection}
}

// Save writes the current document to its progress record. Without a
// selected career it does nothing.
func (s *progressService) Save(ctx context.Context, state *domain.AppState) error {
	if !state.HasCareer() {
		return nil
	}
	if err := s.progress.Put(ctx, state.CareerID, state.Career); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}

func (s *progressService) SetSubjectState(ctx context.Context, state *domain.AppState, subjectID string, st domain.State) error {
	if !st.Valid() {
		return fmt.Errorf("state %q: %w", st, domain.ErrFormat)
	}
	if err := state.Career.SetState(subjectID, st); err != nil {
		return err
	}
	return s.Save(ctx, state)
}

func (s *progressService) SelectYear(ctx context.Context, state *domain.AppState, year int) error {
	if year < 1 {
		return fmt.Errorf("year %d: must be at least 1", year)
	}
	value := strconv.Itoa(year)
	if err := s.selection.SetYear(ctx, value); err != nil {
		return fmt.Errorf("selecting year: %w", err)
	}
	state.SelectedYear = value
	return nil
}
