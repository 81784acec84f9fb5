package repository

import (
	"context"

	"github.com/alexanderramin/cumbre/internal/domain"
)

// Storage keys of the local store.
const (
	ProgressKeyPrefix = "studentProgress_"
	SelectedCareerKey = "selectedCareer"
	SelectedYearKey   = "selectedYear"
	CustomCareersKey  = "customCareers"
)

// Store is a string key/value store. Writes replace the whole value.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

type ProgressRepo interface {
	Get(ctx context.Context, careerID string) (*domain.Career, error)
	Exists(ctx context.Context, careerID string) (bool, error)
	Put(ctx context.Context, careerID string, c *domain.Career) error
	Delete(ctx context.Context, careerID string) error
	ListCareerIDs(ctx context.Context) ([]string, error)
}

type SelectionRepo interface {
	CareerID(ctx context.Context) (string, error)
	SetCareerID(ctx context.Context, careerID string) error
	ClearCareerID(ctx context.Context) error
	Year(ctx context.Context) (string, error)
	SetYear(ctx context.Context, year string) error
}

// CatalogEntry is a custom career together with its position in the catalog.
type CatalogEntry struct {
	domain.CustomCareer
	Index int
}

type CatalogRepo interface {
	List(ctx context.Context) ([]domain.CustomCareer, error)
	Find(ctx context.Context, careerID string) (*CatalogEntry, error)
	Save(ctx context.Context, entries []domain.CustomCareer) error
}
