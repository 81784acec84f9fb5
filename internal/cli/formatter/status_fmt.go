package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/importer"
)

const (
	statusProgressBarWidth = 30
	yearProgressBarWidth   = 12
	trailWidth             = 30
)

// PointsLabel renders "<earned> / <capacity> puntos" with both rounded.
func PointsLabel(t domain.Totals) string {
	return fmt.Sprintf("%.0f / %.0f puntos", math.Round(t.EarnedValue), math.Round(t.TotalCapacity))
}

// SubjectPoints renders a subject's rounded weighted hours, e.g. "45 pts".
func SubjectPoints(s domain.Subject) string {
	return fmt.Sprintf("%.0f pts", math.Round(s.Points()))
}

// YearTitle renders "Año N" and the subject and hour counts of that year.
func YearTitle(c *domain.Career, year int) string {
	subjects := c.SubjectsInYear(year)
	var hours float64
	for _, s := range subjects {
		hours += s.Hours
	}
	return fmt.Sprintf("%s  %s", Bold(fmt.Sprintf("Año %d", year)),
		Dim(fmt.Sprintf("%d materias — %s h", len(subjects), FormatNumber(hours))))
}

// RenderTrail draws the climb: a slope with the climber placed at pct
// (0..100) and a flag at the summit once the career is complete.
func RenderTrail(pct float64, width int) string {
	if width < 4 {
		width = 4
	}
	pct = math.Max(0, math.Min(100, pct))
	pos := int(math.Round(pct / 100 * float64(width-1)))

	ramp := []rune("▁▂▃▄▅▆▇█")
	var slope, marker strings.Builder
	for i := 0; i < width; i++ {
		slope.WriteRune(ramp[i*(len(ramp)-1)/(width-1)])
		if i == pos {
			marker.WriteRune('▲')
		} else {
			marker.WriteRune(' ')
		}
	}
	summit := " "
	if math.Round(pct) >= 100 {
		summit = StyleGreen.Render("⚑")
	}
	return Dim(slope.String()) + summit + "\n" + StyleYellow.Render(marker.String())
}

// FormatYearTable renders the subjects of one year.
func FormatYearTable(c *domain.Career, year int) string {
	subjects := c.SubjectsInYear(year)
	if len(subjects) == 0 {
		return Dim("No subjects in this year.") + "\n"
	}
	rows := make([][]string, 0, len(subjects))
	for _, s := range subjects {
		rows = append(rows, []string{
			Dim(s.ID),
			StyleFg.Render(s.Name),
			FormatNumber(s.Hours) + " h",
			StatePill(s.State),
			SubjectPoints(s),
		})
	}
	return RenderTable([]string{"ID", "MATERIA", "HORAS", "ESTADO", "PUNTOS"}, rows, 2, 4)
}

// FormatYearTabs renders the year selector with the active year highlighted.
func FormatYearTabs(years []int, active int) string {
	tabs := make([]string, 0, len(years))
	for _, y := range years {
		label := fmt.Sprintf(" Año %d ", y)
		if y == active {
			tabs = append(tabs, StyleHeader.Reverse(true).Render(label))
		} else {
			tabs = append(tabs, Dim(label))
		}
	}
	return strings.Join(tabs, " ")
}

// FormatYearSummary renders per-year progress for every year of the career.
func FormatYearSummary(c *domain.Career) string {
	years := c.Years()
	rows := make([][]string, 0, len(years))
	for _, y := range years {
		t := domain.ComputeYear(c, y)
		rows = append(rows, []string{
			fmt.Sprintf("Año %d", y),
			fmt.Sprintf("%d", t.SubjectCount),
			FormatNumber(t.TotalCapacity) + " h",
			RenderProgress(t.Percentage/100, yearProgressBarWidth),
		})
	}
	return RenderTable([]string{"AÑO", "MATERIAS", "HORAS", "PROGRESO"}, rows, 1, 2)
}

// FormatStatus renders the progress summary and the selected year's subjects.
func FormatStatus(state *domain.AppState, year int) string {
	if !state.HasCareer() && state.Career.Empty() {
		msg := Dim("No career selected. Pick one with `cumbre career select ID` (see `cumbre career list`).")
		return RenderBox("Status", msg)
	}

	c := state.Career
	totals := domain.Compute(c)

	var b strings.Builder
	b.WriteString(Bold(domain.CoalesceStr(c.DisplayName, importer.DefaultImageName)) + "\n")
	if state.CareerID != "" {
		b.WriteString(Dim(state.CareerID) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(RenderTrail(totals.Percentage, trailWidth) + "\n\n")
	b.WriteString(RenderProgress(totals.Percentage/100, statusProgressBarWidth) + "\n")
	b.WriteString(StyleFg.Render(PointsLabel(totals)) + "\n")
	if totals.Complete() {
		b.WriteString(StyleGreen.Render("¡Llegaste a la cumbre! Carrera completa.") + "\n")
	}

	if len(c.Years()) > 0 {
		b.WriteString("\n" + FormatYearSummary(c))
		b.WriteString("\n" + FormatYearTabs(c.Years(), year) + "\n\n")
		b.WriteString(YearTitle(c, year) + "\n")
		b.WriteString(FormatYearTable(c, year))
	}

	if state.Status != "" {
		b.WriteString("\n" + Dim(state.Status) + "\n")
	}
	return RenderBox("Status", b.String())
}
