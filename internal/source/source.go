// Package source fetches base career definition files by career id.
package source

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrUnknownCareer is returned when a source has no definition for an id.
var ErrUnknownCareer = errors.New("unknown career")

// Source returns the raw definition document for a career id.
type Source interface {
	Fetch(ctx context.Context, careerID string) ([]byte, error)
}

// Lister is implemented by sources that can enumerate their careers.
type Lister interface {
	List(ctx context.Context) ([]Entry, error)
}

// Entry describes one listable career definition.
type Entry struct {
	ID     string
	Name   string
	Origin string
}

// Chain tries each source in order. A source that does not know the id
// passes to the next; any other failure stops the chain.
type Chain []Source

func (c Chain) Fetch(ctx context.Context, careerID string) ([]byte, error) {
	for _, s := range c {
		data, err := s.Fetch(ctx, careerID)
		if errors.Is(err, ErrUnknownCareer) {
			continue
		}
		return data, err
	}
	return nil, fmt.Errorf("career %q: %w", careerID, ErrUnknownCareer)
}

// List merges the listings of every Lister in the chain. Earlier sources
// win on duplicate ids.
func (c Chain) List(ctx context.Context) ([]Entry, error) {
	seen := make(map[string]bool)
	var out []Entry
	for _, s := range c {
		l, ok := s.(Lister)
		if !ok {
			continue
		}
		entries, err := l.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if seen[e.ID] {
				continue
			}
			seen[e.ID] = true
			out = append(out, e)
		}
	}
	return out, nil
}

// definitionID maps a career id or file name to the definition's base name.
func definitionID(careerID string) string {
	return strings.TrimSuffix(careerID, ".json")
}

// entryFromDefinition reads the display name without decoding the subjects.
func entryFromDefinition(id, origin string, data []byte) Entry {
	name := gjson.GetBytes(data, "nombre_carrera")
	e := Entry{ID: id, Name: id, Origin: origin}
	if name.Type == gjson.String && name.Str != "" {
		e.Name = name.Str
	}
	return e
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
}
