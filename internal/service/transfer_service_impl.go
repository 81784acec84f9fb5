package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/importer"
	"github.com/alexanderramin/cumbre/internal/repository"
	"github.com/sirupsen/logrus"
)

// OverwritePrompt is asked before an import replaces different stored progress.
const OverwritePrompt = "Se detectaron datos guardados localmente. Al importar se sobrescribirán. ¿Desea continuar?"

type transferService struct {
	progress repository.ProgressRepo
	log      *logrus.Entry
	observer UseCaseObserver
}

func NewTransferService(progress repository.ProgressRepo, log *logrus.Entry, observers ...UseCaseObserver) TransferService {
	return &transferService{progress: progress, log: log, observer: useCaseObserverOrNoop(observers)}
}

func (s *transferService) Import(ctx context.Context, state *domain.AppState, raw []byte, confirm Confirmer) (err error) {
	fields := map[string]any{"career": state.CareerID}
	defer observe(ctx, s.observer, "import-progress", time.Now().UTC(), fields, &err)

	decoded, err := importer.Decode(raw)
	if err != nil {
		return fmt.Errorf("decoding import: %w", err)
	}
	fields["shape"] = decoded.Shape.String()
	fields["subjects"] = len(decoded.Career.Subjects)

	if state.HasCareer() {
		conflict, err := s.conflicts(ctx, state.CareerID, decoded.Career)
		if err != nil {
			return err
		}
		if conflict {
			ok, err := confirm.Confirm(ctx, OverwritePrompt)
			if err != nil {
				return fmt.Errorf("confirming import: %w", err)
			}
			if !ok {
				return ErrImportDeclined
			}
		}
	}

	next := decoded.Career
	if next.DisplayName == "" && state.Career != nil {
		next.DisplayName = state.Career.DisplayName
	}
	if state.HasCareer() {
		if err := s.progress.Put(ctx, state.CareerID, next); err != nil {
			return fmt.Errorf("saving progress: %w", err)
		}
	}
	state.Career = next
	state.Status = StatusImported
	return nil
}

// conflicts reports whether a stored record exists and differs from the
// import. An unreadable record does not count as a conflict.
func (s *transferService) conflicts(ctx context.Context, careerID string, incoming *domain.Career) (bool, error) {
	existing, err := s.progress.Get(ctx, careerID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return false, nil
	case errors.Is(err, domain.ErrFormat):
		s.log.WithError(err).WithField("career", careerID).Info("overwriting unreadable progress record")
		return false, nil
	case err != nil:
		return false, fmt.Errorf("reading stored progress: %w", err)
	}
	return !existing.EqualSubjects(incoming.Subjects), nil
}

func (s *transferService) Export(state *domain.AppState) ([]byte, error) {
	return importer.Encode(state.Career, "")
}

func (s *transferService) Snapshot(state *domain.AppState, now time.Time) Snapshot {
	totals := domain.Compute(state.Career)
	return Snapshot{
		FileName: importer.ImageFileName(state.Career.DisplayName, totals.Percentage),
		Overlay:  importer.NewImageOverlay(state.Career, totals, now),
	}
}
