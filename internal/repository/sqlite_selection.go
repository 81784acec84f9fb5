package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/cumbre/internal/db"
)

// SQLiteSelectionRepo persists the selected career and year tab.
type SQLiteSelectionRepo struct {
	store *SQLiteStore
}

// NewSQLiteSelectionRepo creates a new SQLiteSelectionRepo.
func NewSQLiteSelectionRepo(conn db.DBTX) *SQLiteSelectionRepo {
	return &SQLiteSelectionRepo{store: NewSQLiteStore(conn)}
}

// CareerID returns the selected career, or "" when none is stored.
func (r *SQLiteSelectionRepo) CareerID(ctx context.Context) (string, error) {
	return r.optional(ctx, SelectedCareerKey)
}

func (r *SQLiteSelectionRepo) SetCareerID(ctx context.Context, careerID string) error {
	return r.store.Put(ctx, SelectedCareerKey, careerID)
}

func (r *SQLiteSelectionRepo) ClearCareerID(ctx context.Context) error {
	return r.store.Delete(ctx, SelectedCareerKey)
}

// Year returns the selected year tab, or "" when none is stored.
func (r *SQLiteSelectionRepo) Year(ctx context.Context) (string, error) {
	return r.optional(ctx, SelectedYearKey)
}

func (r *SQLiteSelectionRepo) SetYear(ctx context.Context, year string) error {
	return r.store.Put(ctx, SelectedYearKey, year)
}

func (r *SQLiteSelectionRepo) optional(ctx context.Context, key string) (string, error) {
	v, err := r.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return v, err
}
