package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/cumbre/internal/cli/formatter"
	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/importer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const (
	dashboardBarWidth   = 40
	dashboardTrailWidth = 40
)

// ── key map ──────────────────────────────────────────────────────────────────

type dashboardKeys struct {
	PrevYear  key.Binding
	NextYear  key.Binding
	Up        key.Binding
	Down      key.Binding
	NextState key.Binding
	PrevState key.Binding
	Quit      key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		PrevYear:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "año anterior")),
		NextYear:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "año siguiente")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "subir")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "bajar")),
		NextState: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "avanzar estado")),
		PrevState: key.NewBinding(key.WithKeys("backspace", "x"), key.WithHelp("x", "retroceder estado")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "salir")),
	}
}

func (k dashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevYear, k.NextYear, k.Up, k.Down, k.NextState, k.PrevState, k.Quit}
}

func (k dashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg carries the state loaded from the store.
type dashboardLoadedMsg struct {
	state *domain.AppState
	err   error
}

// subjectSavedMsg reports the outcome of persisting a state change.
type subjectSavedMsg struct {
	err error
}

// yearSavedMsg reports that a year tab selection was persisted.
type yearSavedMsg struct {
	year string
	err  error
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel shows the climb, the year tabs and the subjects of the
// active year, and lets the user cycle subject states.
type dashboardModel struct {
	app *App
	ctx context.Context

	state   *domain.AppState
	loading bool
	err     error

	year   int
	cursor int

	keys dashboardKeys
	help help.Model
	bar  progress.Model
}

func newDashboardModel(ctx context.Context, app *App) dashboardModel {
	return dashboardModel{
		app:     app,
		ctx:     ctx,
		loading: true,
		keys:    newDashboardKeys(),
		help:    help.New(),
		bar: progress.New(
			progress.WithGradient(string(formatter.ColorHeader), string(formatter.ColorGreen)),
			progress.WithWidth(dashboardBarWidth),
			progress.WithoutPercentage(),
		),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		state := domain.NewAppState()
		err := app.Loader.Load(ctx, state, "")
		return dashboardLoadedMsg{state: state, err: err}
	}
}

// subjects returns the subjects of the active year.
func (m dashboardModel) subjects() []domain.Subject {
	if m.state == nil {
		return nil
	}
	return m.state.Career.SubjectsInYear(m.year)
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if w := msg.Width - 20; w < dashboardBarWidth {
			m.bar.Width = max(w, 10)
		}
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.state = msg.state
		m.app.State = msg.state
		m.year = m.state.Career.ResolveYear(m.state.SelectedYear)
		m.cursor = 0
		return m, nil

	case subjectSavedMsg:
		m.err = msg.err
		return m, nil

	case yearSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.state.SelectedYear = msg.year
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.loading || m.state == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PrevYear):
		return m.moveYear(-1)
	case key.Matches(msg, m.keys.NextYear):
		return m.moveYear(1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.subjects())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.NextState):
		return m.cycleState(domain.State.Next)
	case key.Matches(msg, m.keys.PrevState):
		return m.cycleState(domain.State.Prev)
	}
	return m, nil
}

func (m dashboardModel) moveYear(delta int) (tea.Model, tea.Cmd) {
	years := m.state.Career.Years()
	idx := -1
	for i, y := range years {
		if y == m.year {
			idx = i
		}
	}
	next := idx + delta
	if idx < 0 || next < 0 || next >= len(years) {
		return m, nil
	}
	m.year = years[next]
	m.cursor = 0

	app, ctx, year := m.app, m.ctx, m.year
	snapshot := *m.state
	return m, func() tea.Msg {
		err := app.Progress.SelectYear(ctx, &snapshot, year)
		return yearSavedMsg{year: snapshot.SelectedYear, err: err}
	}
}

// cycleState swaps in an edited copy of the career and persists it. The
// displayed career is never mutated in place.
func (m dashboardModel) cycleState(step func(domain.State) domain.State) (tea.Model, tea.Cmd) {
	subjects := m.subjects()
	if m.cursor >= len(subjects) {
		return m, nil
	}
	subject := subjects[m.cursor]

	next := m.state.Career.Clone()
	if err := next.SetState(subject.ID, step(subject.State)); err != nil {
		m.err = err
		return m, nil
	}
	m.state.Career = next

	app, ctx := m.app, m.ctx
	snapshot := &domain.AppState{CareerID: m.state.CareerID, Career: next}
	return m, func() tea.Msg {
		return subjectSavedMsg{err: app.Progress.Save(ctx, snapshot)}
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m dashboardModel) View() string {
	if m.loading {
		return formatter.Dim("Cargando…") + "\n"
	}
	if m.state == nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}

	var b strings.Builder
	c := m.state.Career

	if !m.state.HasCareer() && c.Empty() {
		b.WriteString(formatter.Dim("No career selected. Pick one with `cumbre career select ID` (see `cumbre career list`).") + "\n\n")
		b.WriteString(m.help.View(m.keys) + "\n")
		return b.String()
	}

	totals := domain.Compute(c)
	b.WriteString(formatter.Header(domain.CoalesceStr(c.DisplayName, importer.DefaultImageName)) + "\n\n")
	b.WriteString(formatter.RenderTrail(totals.Percentage, dashboardTrailWidth) + "\n\n")
	b.WriteString(m.bar.ViewAs(totals.Percentage/100) + fmt.Sprintf(" %.1f%%", totals.Percentage) + "\n")
	b.WriteString(formatter.StyleFg.Render(formatter.PointsLabel(totals)) + "\n")
	if totals.Complete() {
		b.WriteString(formatter.StyleGreen.Render("¡Llegaste a la cumbre! Carrera completa.") + "\n")
	}

	if years := c.Years(); len(years) > 0 {
		b.WriteString("\n" + formatter.FormatYearTabs(years, m.year) + "\n\n")
		b.WriteString(formatter.YearTitle(c, m.year) + "\n")
		yearTotals := domain.ComputeYear(c, m.year)
		b.WriteString(formatter.RenderCompactBar(yearTotals.Percentage/100, dashboardBarWidth/2, false) + "  " + formatter.Dim(formatter.PointsLabel(yearTotals)) + "\n\n")
		b.WriteString(m.subjectList() + "\n")
	}

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}
	b.WriteString(m.help.View(m.keys) + "\n")
	return b.String()
}

func (m dashboardModel) subjectList() string {
	subjects := m.subjects()
	nameWidth := 0
	for _, s := range subjects {
		nameWidth = max(nameWidth, lipgloss.Width(s.Name))
	}

	lines := make([]string, 0, len(subjects))
	for i, s := range subjects {
		marker := "  "
		name := formatter.StyleFg.Render(s.Name)
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("› ")
			name = formatter.Bold(s.Name)
		}
		pad := strings.Repeat(" ", nameWidth-lipgloss.Width(s.Name))
		lines = append(lines, fmt.Sprintf("%s%s%s  %s  %s", marker, name, pad, formatter.StatePill(s.State), formatter.Dim(formatter.SubjectPoints(s))))
	}
	return strings.Join(lines, "\n")
}

// ── command ──────────────────────────────────────────────────────────────────

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive progress dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("dashboard needs an interactive terminal; use `cumbre status` instead")
			}
			p := tea.NewProgram(
				newDashboardModel(cmd.Context(), app),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(dashboardModel); ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}
}
