package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/teatest"
	"github.com/alexanderramin/cumbre/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardDriver(t *testing.T, env *cliEnv) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newDashboardModel(context.Background(), env.app), teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func dashboard(d *teatest.Driver) dashboardModel {
	return d.Model.(dashboardModel)
}

func TestDashboard_NoCareer(t *testing.T) {
	env := newCLIEnv(t)
	d := newDashboardDriver(t, env)

	assert.Contains(t, d.View(), "No career selected")
	d.PressEnter()
	assert.NoError(t, dashboard(d).err)
}

func TestDashboard_RendersSelectedCareer(t *testing.T) {
	env := newCLIEnv(t)
	env.seedCareer(t, "demo", testutil.NewTestCareer("Carrera de prueba"))
	d := newDashboardDriver(t, env)

	view := d.View()
	assert.Contains(t, view, "CARRERA DE PRUEBA")
	assert.Contains(t, view, "125 / 200 puntos")
	assert.Contains(t, view, "62.5%")
	assert.Contains(t, view, "Año 1")
	assert.Contains(t, view, "Programación I")
	assert.Contains(t, view, "›")
	assert.NotContains(t, view, "Sistemas Operativos")
	assert.Equal(t, 1, dashboard(d).year)
}

func TestDashboard_CycleStatePersists(t *testing.T) {
	env := newCLIEnv(t)
	env.seedCareer(t, "demo", testutil.NewTestCareer("Carrera de prueba"))
	d := newDashboardDriver(t, env)

	// Matemática: cursada -> final.
	d.PressDown()
	d.PressEnter()
	require.NoError(t, dashboard(d).err)

	assert.Contains(t, d.View(), "140 / 200 puntos")
	assert.Equal(t, domain.StateFinal, env.stored(t, "demo").Subjects[1].State)

	// And back again.
	d.PressKey('x')
	assert.Equal(t, domain.StateCursada, env.stored(t, "demo").Subjects[1].State)
	assert.Contains(t, d.View(), "125 / 200 puntos")
}

func TestDashboard_YearTabsPersistSelection(t *testing.T) {
	env := newCLIEnv(t)
	env.seedCareer(t, "demo", testutil.NewTestCareer("Carrera de prueba"))
	d := newDashboardDriver(t, env)

	d.PressRight()
	assert.Equal(t, 2, dashboard(d).year)
	assert.Contains(t, d.View(), "Sistemas Operativos")

	year, err := env.selection.Year(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2", year)

	// No year 3: stays put.
	d.PressRight()
	assert.Equal(t, 2, dashboard(d).year)

	d.PressLeft()
	assert.Equal(t, 1, dashboard(d).year)
}

func TestDashboard_CursorStaysInBounds(t *testing.T) {
	env := newCLIEnv(t)
	env.seedCareer(t, "demo", testutil.NewTestCareer("Carrera de prueba"))
	d := newDashboardDriver(t, env)

	d.PressUp()
	assert.Equal(t, 0, dashboard(d).cursor)
	for i := 0; i < 5; i++ {
		d.PressDown()
	}
	assert.Equal(t, 1, dashboard(d).cursor, "year 1 has two subjects")
}

func TestDashboard_CompletionMessage(t *testing.T) {
	env := newCLIEnv(t)
	env.seedCareer(t, "demo", testutil.NewTestCareer("Casi",
		testutil.WithSubject("a", 100, domain.StateFinal, 1),
		testutil.WithSubject("b", 100, domain.StateCursando, 1),
	))
	d := newDashboardDriver(t, env)
	assert.NotContains(t, d.View(), "Llegaste a la cumbre")

	// cursando -> cursada -> final
	d.PressDown()
	d.PressEnter()
	d.PressEnter()
	assert.Contains(t, d.View(), "Llegaste a la cumbre")
}

func TestDashboard_Quit(t *testing.T) {
	env := newCLIEnv(t)
	d := newDashboardDriver(t, env)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestDashboardCmd_RequiresTerminal(t *testing.T) {
	env := newCLIEnv(t)

	_, err := executeCmd(t, env, "dashboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
