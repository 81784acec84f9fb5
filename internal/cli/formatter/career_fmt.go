package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/service"
)

// FormatCareerList renders every selectable career, marking the current one.
func FormatCareerList(listing []service.CatalogListing, currentID string) string {
	if len(listing) == 0 {
		return Dim("No careers available.") + "\n"
	}
	rows := make([][]string, 0, len(listing))
	for _, l := range listing {
		mark := " "
		if l.ID == currentID {
			mark = StyleGreen.Render("●")
		}
		origin := Dim(l.Origin)
		if l.Origin == "custom" {
			origin = StylePurple.Render(l.Origin)
		}
		saved := ""
		if l.Saved {
			saved = Dim("guardado")
		}
		rows = append(rows, []string{mark, StyleFg.Render(l.ID), Bold(l.Name), origin, saved})
	}
	return RenderTable([]string{"", "ID", "NAME", "ORIGIN", "PROGRESS"}, rows)
}

// FormatCareerDefinition renders a full career, grouped by year.
func FormatCareerDefinition(careerID string, c *domain.Career) string {
	var b strings.Builder
	totals := domain.Compute(c)
	b.WriteString(Bold(domain.CoalesceStr(c.DisplayName, careerID)) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%s · %d materias · %s", careerID, totals.SubjectCount, FormatHours(totals.TotalCapacity))) + "\n")
	for _, y := range c.Years() {
		b.WriteString("\n" + YearTitle(c, y) + "\n")
		b.WriteString(FormatYearTable(c, y))
	}
	return b.String()
}

// FormatDraft previews an editor draft before it is committed.
func FormatDraft(d *domain.CareerDraft) string {
	var b strings.Builder
	b.WriteString(Header(domain.CoalesceStr(d.Name, "(sin nombre)")) + "\n")
	rows := make([][]string, 0, len(d.Subjects))
	for i, s := range d.Subjects {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			s.Name,
			fmt.Sprintf("%d", s.Year),
			FormatNumber(s.Hours) + " h",
		})
	}
	b.WriteString(RenderTable([]string{"#", "MATERIA", "AÑO", "HORAS"}, rows, 0, 2, 3))
	return b.String()
}

// FormatLintResult renders the outcome of a definition lint.
func FormatLintResult(path string, errs []error) string {
	if len(errs) == 0 {
		return StyleGreen.Render("✔ "+path) + Dim(" is a valid career definition") + "\n"
	}
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("✖ %s: %d problem(s)", path, len(errs))) + "\n")
	for _, e := range errs {
		for _, line := range strings.Split(e.Error(), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}
