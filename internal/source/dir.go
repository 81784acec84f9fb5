package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Dir serves definition files from a directory on disk.
type Dir struct {
	root string
}

// NewDir returns a source rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// ErrInvalidID is returned for ids that would escape the source directory.
var ErrInvalidID = errors.New("invalid career id")

func (d *Dir) resolve(careerID string) (string, error) {
	id := definitionID(careerID)
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || filepath.IsAbs(id) {
		return "", fmt.Errorf("career %q: %w", careerID, ErrInvalidID)
	}
	return filepath.Join(d.root, id+".json"), nil
}

func (d *Dir) Fetch(_ context.Context, careerID string) ([]byte, error) {
	if strings.Contains(careerID, "://") {
		return nil, fmt.Errorf("career %q: %w", careerID, ErrUnknownCareer)
	}
	p, err := d.resolve(careerID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("career %q: %w", careerID, ErrUnknownCareer)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}
	return data, nil
}

func (d *Dir) List(_ context.Context) ([]Entry, error) {
	files, err := filepath.Glob(filepath.Join(d.root, "*.json"))
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		entries = append(entries, entryFromDefinition(definitionID(filepath.Base(f)), "dir", data))
	}
	sortEntries(entries)
	return entries, nil
}
