package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/alexanderramin/cumbre/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// ExportFileName is the default name of an exported progress file.
	ExportFileName = "progreso.json"

	// DefaultExportName labels exports of careers without a display name.
	DefaultExportName = "Mi carrera"

	// DefaultImageName labels image snapshots of careers without a display name.
	DefaultImageName = "Mi Carrera"
)

// Encode produces the canonical external representation of a career.
// fallbackName is used when the career has no display name; an empty
// fallback means DefaultExportName.
func Encode(c *domain.Career, fallbackName string) ([]byte, error) {
	name := domain.CoalesceStr(c.DisplayName, fallbackName, DefaultExportName)
	doc := CareerDocument{NombreCarrera: &name, Materias: nonNil(c.Subjects)}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}
	return data, nil
}

// ImageOverlay is the text drawn over a progress snapshot.
type ImageOverlay struct {
	CareerName string
	Percentage string
	Generated  string
}

// NewImageOverlay builds the overlay panel text for a snapshot taken at now.
func NewImageOverlay(c *domain.Career, totals domain.Totals, now time.Time) ImageOverlay {
	return ImageOverlay{
		CareerName: domain.CoalesceStr(c.DisplayName, DefaultImageName),
		Percentage: fmt.Sprintf("Progreso: %.1f%%", totals.Percentage),
		Generated:  "Generado el " + now.Format("2/1/2006"),
	}
}

// ImageFileName returns progreso-<sanitized-name>-<pct>pct.png.
func ImageFileName(careerName string, pct float64) string {
	name := domain.CoalesceStr(careerName, DefaultImageName)
	return fmt.Sprintf("progreso-%s-%spct.png", sanitizeName(name), strconv.Itoa(int(math.Round(pct))))
}

// sanitizeName folds accents and replaces anything outside [A-Za-z0-9] with '-'.
func sanitizeName(name string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
