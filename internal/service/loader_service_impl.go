package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/importer"
	"github.com/alexanderramin/cumbre/internal/repository"
	"github.com/alexanderramin/cumbre/internal/source"
	"github.com/sirupsen/logrus"
)

type loaderService struct {
	progress  repository.ProgressRepo
	selection repository.SelectionRepo
	catalog   repository.CatalogRepo
	source    source.Source
	log       *logrus.Entry
	observer  UseCaseObserver

	// gen numbers load requests; mu serializes applying their results.
	gen atomic.Uint64
	mu  sync.Mutex
}

func NewLoaderService(
	progress repository.ProgressRepo,
	selection repository.SelectionRepo,
	catalog repository.CatalogRepo,
	src source.Source,
	log *logrus.Entry,
	observers ...UseCaseObserver,
) LoaderService {
	return &loaderService{
		progress:  progress,
		selection: selection,
		catalog:   catalog,
		source:    src,
		log:       log,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// resolved is the outcome of the lookup chain for one career id.
type resolved struct {
	career  *domain.Career
	status  string
	persist bool
}

func (s *loaderService) Load(ctx context.Context, state *domain.AppState, careerID string) (err error) {
	gen := s.gen.Add(1)
	fields := map[string]any{"career": careerID, "generation": gen}
	defer observe(ctx, s.observer, "load-career", time.Now().UTC(), fields, &err)

	if careerID == "" {
		careerID, err = s.selection.CareerID(ctx)
		if err != nil {
			return fmt.Errorf("reading selected career: %w", err)
		}
		if careerID == "" {
			return s.apply(gen, func() error {
				state.Reset(StatusNoCareer)
				return nil
			})
		}
		fields["career"] = careerID
	}

	year, err := s.selection.Year(ctx)
	if err != nil {
		return fmt.Errorf("reading selected year: %w", err)
	}

	res := s.resolve(ctx, careerID)
	fields["status"] = res.status

	err = s.apply(gen, func() error {
		if err := s.selection.SetCareerID(ctx, careerID); err != nil {
			return fmt.Errorf("selecting career: %w", err)
		}
		if res.persist {
			if err := s.progress.Put(ctx, careerID, res.career); err != nil {
				return fmt.Errorf("saving progress: %w", err)
			}
		}
		state.CareerID = careerID
		state.Career = res.career
		state.Status = res.status
		state.SelectedYear = year
		return nil
	})
	return err
}

// apply runs fn only if no newer load started since gen was issued.
func (s *loaderService) apply(gen uint64, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen.Load() != gen {
		return ErrSuperseded
	}
	return fn()
}

func (s *loaderService) resolve(ctx context.Context, careerID string) resolved {
	log := s.log.WithField("career", careerID)

	record, err := s.progress.Get(ctx, careerID)
	switch {
	case err == nil:
		return resolved{career: record, status: StatusLocal}
	case !errors.Is(err, repository.ErrNotFound):
		log.WithError(err).Warn("ignoring unreadable progress record")
	}

	if domain.IsCustomKey(careerID) {
		entry, err := s.catalog.Find(ctx, careerID)
		if err == nil {
			return resolved{career: entry.Career(), status: StatusCustom, persist: true}
		}
		log.WithError(err).Warn("custom career not in catalog")
	}

	career, err := s.fetch(ctx, careerID)
	if err != nil {
		log.WithError(err).Warn("loading base definition failed, using defaults")
		return resolved{career: domain.DefaultCareer(), status: StatusDefaults}
	}
	return resolved{career: career, status: StatusLoaded, persist: true}
}

func (s *loaderService) fetch(ctx context.Context, careerID string) (*domain.Career, error) {
	data, err := s.source.Fetch(ctx, careerID)
	if err != nil {
		return nil, err
	}
	decoded, err := importer.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding definition: %w", err)
	}
	return decoded.Career, nil
}

func (s *loaderService) Peek(ctx context.Context, careerID string) (*domain.Career, error) {
	record, err := s.progress.Get(ctx, careerID)
	if err == nil {
		return record, nil
	}
	if domain.IsCustomKey(careerID) {
		entry, err := s.catalog.Find(ctx, careerID)
		if err != nil {
			return nil, fmt.Errorf("finding custom career: %w", err)
		}
		return entry.Career(), nil
	}
	career, err := s.fetch(ctx, careerID)
	if err != nil {
		return nil, fmt.Errorf("loading career %q: %w", careerID, err)
	}
	return career, nil
}
