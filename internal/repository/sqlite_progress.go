package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/cumbre/internal/db"
	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/importer"
)

// SQLiteProgressRepo stores one progress record per career under
// studentProgress_<careerId>.
type SQLiteProgressRepo struct {
	store *SQLiteStore
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{store: NewSQLiteStore(conn)}
}

func progressKey(careerID string) string {
	return ProgressKeyPrefix + careerID
}

// Get decodes the stored record in either accepted shape. A record that
// exists but cannot be decoded fails with domain.ErrFormat.
func (r *SQLiteProgressRepo) Get(ctx context.Context, careerID string) (*domain.Career, error) {
	raw, err := r.store.Get(ctx, progressKey(careerID))
	if err != nil {
		return nil, err
	}
	decoded, err := importer.Decode([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("progress record %q: %w", careerID, err)
	}
	return decoded.Career, nil
}

func (r *SQLiteProgressRepo) Exists(ctx context.Context, careerID string) (bool, error) {
	_, err := r.store.Get(ctx, progressKey(careerID))
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SQLiteProgressRepo) Put(ctx context.Context, careerID string, c *domain.Career) error {
	data, err := importer.EncodeRecord(c)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, progressKey(careerID), string(data))
}

func (r *SQLiteProgressRepo) Delete(ctx context.Context, careerID string) error {
	return r.store.Delete(ctx, progressKey(careerID))
}

// ListCareerIDs returns every career that has a stored record.
func (r *SQLiteProgressRepo) ListCareerIDs(ctx context.Context) ([]string, error) {
	keys, err := r.store.Keys(ctx, ProgressKeyPrefix)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, ProgressKeyPrefix))
	}
	return ids, nil
}
