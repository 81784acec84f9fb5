package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cumbre/internal/db"
	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/importer"
	"github.com/alexanderramin/cumbre/internal/repository"
)

// duplicateFallbackName names copies of definitions without a display name.
const duplicateFallbackName = "Carrera"

type catalogService struct {
	catalog  repository.CatalogRepo
	sources  Sources
	uow      db.UnitOfWork
	newID    func() string
	observer UseCaseObserver
}

func NewCatalogService(catalog repository.CatalogRepo, sources Sources, uow db.UnitOfWork, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		catalog:  catalog,
		sources:  sources,
		uow:      uow,
		newID:    repository.NewCatalogID,
		observer: useCaseObserverOrNoop(observers),
	}
}

// DeletePrompt is asked before a custom career is removed.
func DeletePrompt(name string) string {
	return fmt.Sprintf("¿Estás seguro de que deseas eliminar %q?\n\nEsta acción no se puede deshacer y se perderá todo tu progreso en esta carrera.", name)
}

func (s *catalogService) List(ctx context.Context) ([]CatalogListing, error) {
	defs, err := s.sources.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing built-in careers: %w", err)
	}
	custom, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing custom careers: %w", err)
	}

	saved := map[string]bool{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		ids, err := repository.NewSQLiteProgressRepo(tx).ListCareerIDs(ctx)
		for _, id := range ids {
			saved[id] = true
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing saved progress: %w", err)
	}

	out := make([]CatalogListing, 0, len(defs)+len(custom))
	for _, d := range defs {
		out = append(out, CatalogListing{ID: d.ID, Name: d.Name, Origin: d.Origin, Saved: saved[d.ID]})
	}
	for _, c := range custom {
		out = append(out, CatalogListing{ID: c.Key(), Name: c.Name, Origin: "custom", Saved: saved[c.Key()]})
	}
	return out, nil
}

func (s *catalogService) Create(ctx context.Context, state *domain.AppState, draft *domain.CareerDraft) (created *domain.CustomCareer, err error) {
	fields := map[string]any{"subjects": len(draft.Subjects)}
	defer observe(ctx, s.observer, "create-career", time.Now().UTC(), fields, &err)

	if err = draft.Validate(); err != nil {
		return nil, err
	}
	n := draft.Normalized()
	entry := domain.CustomCareer{Name: n.Name, Subjects: n.Subjects}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		catalog := repository.NewSQLiteCatalogRepo(tx)
		entries, err := catalog.List(ctx)
		if err != nil {
			return err
		}
		entry.ID = s.uniqueID(entries)
		if err := catalog.Save(ctx, append(entries, entry)); err != nil {
			return fmt.Errorf("saving catalog: %w", err)
		}
		if err := repository.NewSQLiteProgressRepo(tx).Put(ctx, entry.Key(), entry.Career()); err != nil {
			return fmt.Errorf("saving progress: %w", err)
		}
		return repository.NewSQLiteSelectionRepo(tx).SetCareerID(ctx, entry.Key())
	})
	if err != nil {
		return nil, err
	}

	fields["career"] = entry.Key()
	state.CareerID = entry.Key()
	state.Career = entry.Career()
	state.Status = StatusCreated
	return &entry, nil
}

func (s *catalogService) uniqueID(entries []domain.CustomCareer) string {
	used := make(map[string]bool, len(entries))
	for _, e := range entries {
		used[e.ID] = true
	}
	for {
		id := s.newID()
		if !used[id] {
			return id
		}
	}
}

func (s *catalogService) Edit(ctx context.Context, state *domain.AppState, careerID string, draft *domain.CareerDraft) (edited *domain.CustomCareer, err error) {
	fields := map[string]any{"career": careerID, "subjects": len(draft.Subjects)}
	defer observe(ctx, s.observer, "edit-career", time.Now().UTC(), fields, &err)

	if !domain.IsCustomKey(careerID) {
		return nil, fmt.Errorf("career %q: %w", careerID, ErrNotCustom)
	}
	if err = draft.Validate(); err != nil {
		return nil, err
	}
	n := draft.Normalized()

	var entry domain.CustomCareer
	current := false
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		catalog := repository.NewSQLiteCatalogRepo(tx)
		found, err := catalog.Find(ctx, careerID)
		if err != nil {
			return err
		}
		entries, err := catalog.List(ctx)
		if err != nil {
			return err
		}
		entry = domain.CustomCareer{ID: found.ID, Name: n.Name, Subjects: n.Subjects}
		entries[found.Index] = entry
		if err := catalog.Save(ctx, entries); err != nil {
			return fmt.Errorf("saving catalog: %w", err)
		}

		current = state.HasCareer() && (state.CareerID == careerID || state.CareerID == entry.Key())
		progress := repository.NewSQLiteProgressRepo(tx)
		for _, key := range uniqueStrings(entry.Key(), careerID) {
			if err := progress.Put(ctx, key, entry.Career()); err != nil {
				return fmt.Errorf("saving progress: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if current {
		state.Career = entry.Career()
		state.Status = StatusUpdated
	}
	return &entry, nil
}

// Duplicate copies careerID into an uncommitted draft. A definition
// without a name borrows the current career's name.
func (s *catalogService) Duplicate(ctx context.Context, state *domain.AppState, careerID string) (*domain.CareerDraft, error) {
	if domain.IsCustomKey(careerID) {
		entry, err := s.catalog.Find(ctx, careerID)
		if err != nil {
			return nil, err
		}
		return domain.DraftFrom(entry.Name, entry.Career()), nil
	}

	data, err := s.sources.Fetch(ctx, careerID)
	if err != nil {
		return nil, fmt.Errorf("loading career to duplicate: %w", err)
	}
	decoded, err := importer.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading career to duplicate: %w", err)
	}
	var current string
	if state != nil && state.Career != nil {
		current = state.Career.DisplayName
	}
	name := domain.CoalesceStr(decoded.Career.DisplayName, current, duplicateFallbackName)
	return domain.DraftFrom(name, decoded.Career), nil
}

func (s *catalogService) Delete(ctx context.Context, state *domain.AppState, careerID string, confirm Confirmer) (err error) {
	fields := map[string]any{"career": careerID}
	defer observe(ctx, s.observer, "delete-career", time.Now().UTC(), fields, &err)

	if !domain.IsCustomKey(careerID) {
		return fmt.Errorf("career %q: %w", careerID, ErrNotCustom)
	}
	found, err := s.catalog.Find(ctx, careerID)
	if err != nil {
		return err
	}

	ok, err := confirm.Confirm(ctx, DeletePrompt(found.Name))
	if err != nil {
		return fmt.Errorf("confirming delete: %w", err)
	}
	if !ok {
		return ErrDeleteDeclined
	}

	key := found.Key()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		catalog := repository.NewSQLiteCatalogRepo(tx)
		entries, err := catalog.List(ctx)
		if err != nil {
			return err
		}
		kept := make([]domain.CustomCareer, 0, len(entries))
		for _, e := range entries {
			if e.ID != found.ID {
				kept = append(kept, e)
			}
		}
		if err := catalog.Save(ctx, kept); err != nil {
			return fmt.Errorf("saving catalog: %w", err)
		}

		progress := repository.NewSQLiteProgressRepo(tx)
		for _, id := range uniqueStrings(key, careerID) {
			if err := progress.Delete(ctx, id); err != nil {
				return err
			}
		}

		selection := repository.NewSQLiteSelectionRepo(tx)
		selected, err := selection.CareerID(ctx)
		if err != nil {
			return err
		}
		if selected == key || selected == careerID {
			return selection.ClearCareerID(ctx)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if state.CareerID == key || state.CareerID == careerID {
		state.Reset(StatusDeleted)
	}
	return nil
}

func uniqueStrings(vals ...string) []string {
	seen := make(map[string]bool, len(vals))
	out := vals[:0:0]
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
