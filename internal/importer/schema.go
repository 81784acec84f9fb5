package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/tidwall/gjson"
)

// Shape identifies which of the two accepted document layouts was decoded.
type Shape int

const (
	// ShapeLegacy is a bare array of subjects.
	ShapeLegacy Shape = iota + 1
	// ShapeWrapped is {"nombre_carrera": ..., "materias": [...]}.
	ShapeWrapped
)

func (s Shape) String() string {
	switch s {
	case ShapeLegacy:
		return "legacy"
	case ShapeWrapped:
		return "wrapped"
	default:
		return "unknown"
	}
}

// CareerDocument is the wrapped wire shape used for definition files,
// persisted progress records and exports.
type CareerDocument struct {
	NombreCarrera *string          `json:"nombre_carrera"`
	Materias      []domain.Subject `json:"materias"`
}

// Decoded is a career document normalized from either wire shape.
type Decoded struct {
	Career *domain.Career
	Shape  Shape
}

// Decode accepts a bare subject array or a wrapped object with an array
// "materias". Any other input fails with domain.ErrFormat.
func Decode(raw []byte) (*Decoded, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("malformed JSON: %w", domain.ErrFormat)
	}

	doc := gjson.ParseBytes(raw)
	switch {
	case doc.IsArray():
		var subjects []domain.Subject
		if err := json.Unmarshal(raw, &subjects); err != nil {
			return nil, fmt.Errorf("decoding subject array: %v: %w", err, domain.ErrFormat)
		}
		return &Decoded{Career: &domain.Career{Subjects: nonNil(subjects)}, Shape: ShapeLegacy}, nil

	case doc.IsObject() && doc.Get("materias").IsArray():
		var subjects []domain.Subject
		if err := json.Unmarshal([]byte(doc.Get("materias").Raw), &subjects); err != nil {
			return nil, fmt.Errorf("decoding materias: %v: %w", err, domain.ErrFormat)
		}
		career := &domain.Career{Subjects: nonNil(subjects)}
		// nombre_carrera is adopted only when it is a non-empty string.
		if name := doc.Get("nombre_carrera"); name.Type == gjson.String && name.Str != "" {
			career.DisplayName = name.Str
		}
		return &Decoded{Career: career, Shape: ShapeWrapped}, nil

	default:
		return nil, fmt.Errorf("expected a subject array or an object with \"materias\": %w", domain.ErrFormat)
	}
}

// LoadFile reads and decodes a career document from disk.
func LoadFile(path string) (*Decoded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// EncodeRecord produces the persisted progress record. An unset display
// name is stored as null.
func EncodeRecord(c *domain.Career) ([]byte, error) {
	doc := CareerDocument{Materias: nonNil(c.Subjects)}
	if c.DisplayName != "" {
		name := c.DisplayName
		doc.NombreCarrera = &name
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding progress record: %w", err)
	}
	return data, nil
}

func nonNil(subjects []domain.Subject) []domain.Subject {
	if subjects == nil {
		return []domain.Subject{}
	}
	return subjects
}
