package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/service"
	"github.com/alexanderramin/cumbre/internal/testutil"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"zero", 0, "  0.0%"},
		{"scenario", 0.625, " 62.5%"},
		{"full", 1, "100.0%"},
		{"over clamps", 1.7, "100.0%"},
		{"negative clamps", -0.2, "  0.0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, 10)
			assert.True(t, strings.HasSuffix(got, tt.want), got)
			assert.Equal(t, 10+2+1+6, lipgloss.Width(got))
		})
	}
}

func TestRenderCompactBar(t *testing.T) {
	assert.NotContains(t, RenderCompactBar(0.5, 10, false), "%")
	assert.Contains(t, RenderCompactBar(0, 4, true), emptyBlock)
	assert.Contains(t, RenderCompactBar(1, 4, true), filledBlock)
	assert.Equal(t, 2, lipgloss.Width(RenderCompactBar(0.5, 1, false)))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{
		{StyleGreen.Render("x"), "1"},
		{"long", "22"},
	}, 1)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(l))
	}
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "64", FormatNumber(64))
	assert.Equal(t, "12.5", FormatNumber(12.5))
	assert.Equal(t, "64h", FormatHours(64))
}

func TestPointsAndSubjectLabels(t *testing.T) {
	c := testutil.NewTestCareer("X")
	assert.Equal(t, "125 / 200 puntos", PointsLabel(domain.Compute(c)))
	assert.Equal(t, "45 pts", SubjectPoints(c.Subjects[1]))
}

func TestStatePill(t *testing.T) {
	assert.Contains(t, StatePill(domain.StateFinal), "Final aprobada")
	assert.Contains(t, StatePill(domain.State("rara")), "? rara")
}

func TestRenderTrail(t *testing.T) {
	start := RenderTrail(0, 10)
	assert.NotContains(t, start, "⚑")
	lines := strings.Split(start, "\n")
	assert.True(t, strings.HasPrefix(lines[1], "▲"))

	summit := RenderTrail(99.6, 10)
	assert.Contains(t, summit, "⚑")
}

func TestFormatStatus_NoCareer(t *testing.T) {
	out := FormatStatus(domain.NewAppState(), 0)
	assert.Contains(t, out, "No career selected")
}

func TestFormatStatus_ShowsSelectedYear(t *testing.T) {
	state := domain.NewAppState()
	state.CareerID = "tecnicatura"
	state.Career = testutil.NewTestCareer("Tecnicatura")
	state.Status = "career loaded"

	out := FormatStatus(state, 2)
	assert.Contains(t, out, "Tecnicatura")
	assert.Contains(t, out, "62.5%")
	assert.Contains(t, out, "125 / 200 puntos")
	assert.Contains(t, out, "Sistemas Operativos")
	assert.NotContains(t, out, "Matemática", "year 1 subjects are not listed")
	assert.Contains(t, out, "career loaded")
}

func TestFormatStatus_Complete(t *testing.T) {
	state := domain.NewAppState()
	state.CareerID = "x"
	state.Career = testutil.NewTestCareer("Fin", testutil.WithSubject("a", 10, domain.StateFinal, 1))

	assert.Contains(t, FormatStatus(state, 1), "Carrera completa")
}

func TestFormatCareerList_MarksCurrent(t *testing.T) {
	out := FormatCareerList([]service.CatalogListing{
		{ID: "materias_LicInformatica", Name: "Licenciatura", Origin: "builtin"},
		{ID: "custom_ab12cd34", Name: "Propia", Origin: "custom", Saved: true},
	}, "custom_ab12cd34")

	lines := strings.Split(out, "\n")
	assert.NotContains(t, lines[2], "●")
	assert.NotContains(t, lines[2], "guardado")
	assert.Contains(t, lines[3], "●")
	assert.Contains(t, lines[3], "guardado")
}

func TestFormatLintResult(t *testing.T) {
	assert.Contains(t, FormatLintResult("a.json", nil), "valid career definition")

	out := FormatLintResult("b.json", []error{errors.New("schema: bad\n  at /0/hours")})
	assert.Contains(t, out, "1 problem(s)")
	assert.Contains(t, out, "  at /0/hours")
}

func TestFormatDraft(t *testing.T) {
	out := FormatDraft(testutil.NewTestDraft("Nueva", testutil.WithDraftSubject("Álgebra", 64, 1)))
	assert.Contains(t, out, "NUEVA")
	assert.Contains(t, out, "Álgebra")
}
