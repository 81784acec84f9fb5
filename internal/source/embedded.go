package source

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed careers/*.json
var builtinFS embed.FS

// Embedded serves the career definitions compiled into the binary.
type Embedded struct {
	fsys fs.FS
}

// NewEmbedded returns the built-in catalog.
func NewEmbedded() *Embedded {
	sub, err := fs.Sub(builtinFS, "careers")
	if err != nil {
		panic(err)
	}
	return &Embedded{fsys: sub}
}

func (e *Embedded) Fetch(_ context.Context, careerID string) ([]byte, error) {
	id := definitionID(careerID)
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, fmt.Errorf("career %q: %w", careerID, ErrUnknownCareer)
	}
	data, err := fs.ReadFile(e.fsys, id+".json")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("career %q: %w", careerID, ErrUnknownCareer)
	}
	if err != nil {
		return nil, fmt.Errorf("reading builtin %q: %w", careerID, err)
	}
	return data, nil
}

func (e *Embedded) List(_ context.Context) ([]Entry, error) {
	files, err := fs.Glob(e.fsys, "*.json")
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		data, err := fs.ReadFile(e.fsys, f)
		if err != nil {
			return nil, fmt.Errorf("reading builtin %q: %w", f, err)
		}
		entries = append(entries, entryFromDefinition(definitionID(path.Base(f)), "builtin", data))
	}
	sortEntries(entries)
	return entries, nil
}
