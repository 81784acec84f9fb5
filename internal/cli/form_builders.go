package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cumbre/internal/cli/formatter"
	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Editor defaults for a subject line that leaves year or hours blank.
const (
	editorDefaultYear  = 1
	editorMaxYear      = 6
	editorDefaultHours = 64
)

// cumbreHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func cumbreHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// parseSubjectSpec reads one "year:hours:name" line. A line without colons
// is just a name; blank year or hours take the editor defaults.
func parseSubjectSpec(spec string) (domain.Subject, error) {
	spec = strings.TrimSpace(spec)
	s := domain.Subject{Year: editorDefaultYear, Hours: editorDefaultHours, State: domain.StateNo}
	if !strings.Contains(spec, ":") {
		s.Name = spec
		return s, nil
	}

	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return s, fmt.Errorf("subject %q: want year:hours:name", spec)
	}
	if y := strings.TrimSpace(parts[0]); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return s, fmt.Errorf("subject %q: year %q is not a number", spec, y)
		}
		if year > editorMaxYear {
			return s, fmt.Errorf("subject %q: year must be at most %d", spec, editorMaxYear)
		}
		s.Year = year
	}
	if h := strings.TrimSpace(parts[1]); h != "" {
		hours, err := strconv.ParseFloat(h, 64)
		if err != nil {
			return s, fmt.Errorf("subject %q: hours %q is not a number", spec, h)
		}
		s.Hours = hours
	}
	s.Name = strings.TrimSpace(parts[2])
	return s, nil
}

// parseSubjectSpecs parses every non-blank line or flag value.
func parseSubjectSpecs(specs []string) ([]domain.Subject, error) {
	var (
		subjects []domain.Subject
		errs     []error
	)
	for _, spec := range specs {
		if strings.TrimSpace(spec) == "" {
			continue
		}
		s, err := parseSubjectSpec(spec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		subjects = append(subjects, s)
	}
	return subjects, errors.Join(errs...)
}

// formatSubjectSpecs is the inverse of parseSubjectSpecs, used to pre-fill
// the editor.
func formatSubjectSpecs(subjects []domain.Subject) string {
	lines := make([]string, 0, len(subjects))
	for _, s := range subjects {
		lines = append(lines, fmt.Sprintf("%d:%s:%s", s.Year, formatter.FormatNumber(s.Hours), s.Name))
	}
	return strings.Join(lines, "\n")
}

// careerEditorForm builds the create/edit form for a custom career. It
// edits draft in place once the form completes.
func careerEditorForm(draft *domain.CareerDraft, specs *string) *huh.Form {
	*specs = formatSubjectSpecs(draft.Subjects)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nombre de la carrera").
				Placeholder("Ej: Ingeniería en Sistemas").
				Value(&draft.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("el nombre es obligatorio")
					}
					return nil
				}),
			huh.NewText().
				Title("Materias").
				Description(fmt.Sprintf("Una por línea: año:horas:nombre (año 1-%d, por defecto %d h)", editorMaxYear, editorDefaultHours)).
				Lines(12).
				Value(specs).
				Validate(func(s string) error {
					_, err := parseSubjectSpecs(strings.Split(s, "\n"))
					return err
				}),
		),
	).WithTheme(cumbreHuhTheme()).WithShowHelp(true)
}

// runCareerEditor opens the editor on draft and returns the edited copy.
func runCareerEditor(ctx context.Context, draft *domain.CareerDraft) (*domain.CareerDraft, error) {
	edited := &domain.CareerDraft{Name: draft.Name, Subjects: draft.Subjects}
	var specs string
	if err := careerEditorForm(edited, &specs).RunWithContext(ctx); err != nil {
		return nil, err
	}
	subjects, err := parseSubjectSpecs(strings.Split(specs, "\n"))
	if err != nil {
		return nil, err
	}
	edited.Subjects = keepSubjectIdentity(draft.Subjects, subjects)
	return edited, nil
}

// keepSubjectIdentity carries ids and states over from the original
// subjects when a line still names the same subject.
func keepSubjectIdentity(before, after []domain.Subject) []domain.Subject {
	byName := make(map[string]domain.Subject, len(before))
	for _, s := range before {
		byName[strings.TrimSpace(s.Name)] = s
	}
	out := make([]domain.Subject, len(after))
	for i, s := range after {
		if prev, ok := byName[s.Name]; ok {
			s.ID = prev.ID
			s.State = prev.State
			delete(byName, s.Name)
		}
		out[i] = s
	}
	return out
}
