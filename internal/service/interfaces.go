package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/importer"
	"github.com/alexanderramin/cumbre/internal/source"
)

// Load statuses reported through AppState.Status.
const (
	StatusNoCareer = "no career selected"
	StatusLocal    = "loaded from local store"
	StatusCustom   = "custom career loaded"
	StatusLoaded   = "career loaded"
	StatusDefaults = "using defaults"
	StatusImported = "progress imported"
	StatusCreated  = "custom career created"
	StatusUpdated  = "custom career updated"
	StatusDeleted  = "custom career deleted"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// AlwaysConfirm accepts every prompt (--yes).
var AlwaysConfirm = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })

type LoaderService interface {
	// Load selects careerID (or the stored selection when empty) and fills
	// state with its document.
	Load(ctx context.Context, state *domain.AppState, careerID string) error
	// Peek resolves a career document without selecting or persisting it.
	Peek(ctx context.Context, careerID string) (*domain.Career, error)
}

type ProgressService interface {
	Save(ctx context.Context, state *domain.AppState) error
	SetSubjectState(ctx context.Context, state *domain.AppState, subjectID string, st domain.State) error
	SelectYear(ctx context.Context, state *domain.AppState, year int) error
}

// Snapshot names and captions a progress image.
type Snapshot struct {
	FileName string
	Overlay  importer.ImageOverlay
}

type TransferService interface {
	Import(ctx context.Context, state *domain.AppState, raw []byte, confirm Confirmer) error
	Export(state *domain.AppState) ([]byte, error)
	Snapshot(state *domain.AppState, now time.Time) Snapshot
}

// CatalogListing is one selectable career.
type CatalogListing struct {
	ID     string
	Name   string
	Origin string
	Saved  bool // a progress record exists
}

type CatalogService interface {
	List(ctx context.Context) ([]CatalogListing, error)
	Create(ctx context.Context, state *domain.AppState, draft *domain.CareerDraft) (*domain.CustomCareer, error)
	Edit(ctx context.Context, state *domain.AppState, careerID string, draft *domain.CareerDraft) (*domain.CustomCareer, error)
	Duplicate(ctx context.Context, state *domain.AppState, careerID string) (*domain.CareerDraft, error)
	Delete(ctx context.Context, state *domain.AppState, careerID string, confirm Confirmer) error
}

// Sources is what the services need from the career source chain.
type Sources interface {
	source.Source
	source.Lister
}
