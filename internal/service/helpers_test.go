package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/cumbre/internal/db"
	"github.com/alexanderramin/cumbre/internal/logging"
	"github.com/alexanderramin/cumbre/internal/repository"
	"github.com/alexanderramin/cumbre/internal/source"
	"github.com/alexanderramin/cumbre/internal/testutil"
)

const tecnicaturaDef = `{
  "nombre_carrera": "Tecnicatura",
  "materias": [
    {"id": "t1", "name": "Programación I", "hours": 80, "state": "no", "year": 1},
    {"id": "t2", "name": "Matemática", "hours": 60, "state": "no", "year": 1},
    {"id": "t3", "name": "Redes", "hours": 60, "state": "no", "year": 2}
  ]
}`

// fakeSource serves fixed definitions and can hold a fetch open.
type fakeSource struct {
	mu      sync.Mutex
	defs    map[string]string
	calls   map[string]int
	gates   map[string]chan struct{}
	entered chan string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		defs:    map[string]string{"tecnicatura": tecnicaturaDef},
		calls:   map[string]int{},
		gates:   map[string]chan struct{}{},
		entered: make(chan string, 8),
	}
}

func (f *fakeSource) Fetch(_ context.Context, careerID string) ([]byte, error) {
	f.mu.Lock()
	f.calls[careerID]++
	gate := f.gates[careerID]
	raw, ok := f.defs[careerID]
	f.mu.Unlock()

	f.entered <- careerID
	if gate != nil {
		<-gate
	}
	if !ok {
		return nil, source.ErrUnknownCareer
	}
	return []byte(raw), nil
}

func (f *fakeSource) List(context.Context) ([]source.Entry, error) {
	return []source.Entry{{ID: "tecnicatura", Name: "Tecnicatura", Origin: "builtin"}}, nil
}

func (f *fakeSource) callCount(careerID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[careerID]
}

type testEnv struct {
	db        *sql.DB
	store     *repository.SQLiteStore
	progress  *repository.SQLiteProgressRepo
	selection *repository.SQLiteSelectionRepo
	catalog   *repository.SQLiteCatalogRepo
	src       *fakeSource

	loader   LoaderService
	tracker  ProgressService
	transfer TransferService
	careers  CatalogService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithUoW(t, nil)
}

func newTestEnvWithUoW(t *testing.T, uow func(*sql.DB) db.UnitOfWork) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	e := &testEnv{
		db:        database,
		store:     repository.NewSQLiteStore(database),
		progress:  repository.NewSQLiteProgressRepo(database),
		selection: repository.NewSQLiteSelectionRepo(database),
		catalog:   repository.NewSQLiteCatalogRepo(database),
		src:       newFakeSource(),
	}
	unit := testutil.NewTestUoW(database)
	if uow != nil {
		unit = uow(database)
	}
	log := logging.Discard()
	e.loader = NewLoaderService(e.progress, e.selection, e.catalog, e.src, log)
	e.tracker = NewProgressService(e.progress, e.selection)
	e.transfer = NewTransferService(e.progress, log)
	e.careers = NewCatalogService(e.catalog, e.src, unit)
	return e
}

func (e *testEnv) storedValue(t *testing.T, key string) (string, bool) {
	t.Helper()
	v, err := e.store.Get(context.Background(), key)
	if err != nil {
		return "", false
	}
	return v, true
}

// confirmer records prompts and answers with a fixed value.
type confirmer struct {
	answer  bool
	prompts []string
}

func (c *confirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	c.prompts = append(c.prompts, prompt)
	return c.answer, nil
}

func failIfAsked(t *testing.T) Confirmer {
	return ConfirmFunc(func(_ context.Context, prompt string) (bool, error) {
		t.Fatalf("unexpected confirmation: %s", prompt)
		return false, nil
	})
}
