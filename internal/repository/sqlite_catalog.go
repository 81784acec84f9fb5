package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/cumbre/internal/db"
	"github.com/alexanderramin/cumbre/internal/domain"
)

// SQLiteCatalogRepo stores the custom career catalog as one JSON array
// under customCareers.
type SQLiteCatalogRepo struct {
	store *SQLiteStore
	newID func() string
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{store: NewSQLiteStore(conn), newID: NewCatalogID}
}

// List returns the catalog in stored order. Entries written before ids
// existed take their position as id, and the upgraded catalog is written
// back.
func (r *SQLiteCatalogRepo) List(ctx context.Context) ([]domain.CustomCareer, error) {
	raw, err := r.store.Get(ctx, CustomCareersKey)
	if errors.Is(err, ErrNotFound) {
		return []domain.CustomCareer{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []domain.CustomCareer
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decoding custom careers: %v: %w", err, domain.ErrFormat)
	}
	if entries == nil {
		entries = []domain.CustomCareer{}
	}

	used := make(map[string]bool, len(entries))
	for _, e := range entries {
		used[e.ID] = true
	}
	upgraded := false
	for i := range entries {
		if entries[i].ID == "" {
			// Keep the positional key so stored progress and selection still match.
			id := strconv.Itoa(i)
			for used[id] {
				id = r.newID()
			}
			entries[i].ID = id
			used[id] = true
			upgraded = true
		}
		if entries[i].Subjects == nil {
			entries[i].Subjects = []domain.Subject{}
		}
	}
	if upgraded {
		if err := r.Save(ctx, entries); err != nil {
			return nil, fmt.Errorf("upgrading custom careers: %w", err)
		}
	}
	return entries, nil
}

// Find resolves a custom career identifier. custom_<id> matches by id;
// a decimal custom_<n> that matches no id falls back to position n.
func (r *SQLiteCatalogRepo) Find(ctx context.Context, careerID string) (*CatalogEntry, error) {
	id, ok := domain.CustomIDFromKey(careerID)
	if !ok {
		return nil, fmt.Errorf("career %q is not a custom career: %w", careerID, ErrNotFound)
	}

	entries, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		if e.ID == id {
			return &CatalogEntry{CustomCareer: e, Index: i}, nil
		}
	}
	if n, err := strconv.Atoi(id); err == nil && n >= 0 && n < len(entries) {
		return &CatalogEntry{CustomCareer: entries[n], Index: n}, nil
	}
	return nil, fmt.Errorf("custom career %q: %w", careerID, ErrNotFound)
}

func (r *SQLiteCatalogRepo) Save(ctx context.Context, entries []domain.CustomCareer) error {
	if entries == nil {
		entries = []domain.CustomCareer{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding custom careers: %w", err)
	}
	return r.store.Put(ctx, CustomCareersKey, string(data))
}
