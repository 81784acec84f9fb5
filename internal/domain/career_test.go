package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCareer() *Career {
	return &Career{
		DisplayName: "Tecnicatura",
		Subjects: []Subject{
			{ID: "p1", Name: "Programación I", Hours: 80, State: StateNo, Year: 1},
			{ID: "bd", Name: "Base de Datos", Hours: 72, State: StateNo, Year: 2},
			{ID: "m1", Name: "Matemática", Hours: 60, State: StateCursando, Year: 1},
		},
	}
}

func TestCareer_YearsSortedAndDistinct(t *testing.T) {
	c := sampleCareer()
	assert.Equal(t, []int{1, 2}, c.Years())
	assert.Empty(t, (&Career{}).Years())
}

func TestCareer_SubjectsInYearKeepsStorageOrder(t *testing.T) {
	c := sampleCareer()
	y1 := c.SubjectsInYear(1)
	require.Len(t, y1, 2)
	assert.Equal(t, "p1", y1[0].ID)
	assert.Equal(t, "m1", y1[1].ID)

	// Grouping must not reorder storage.
	assert.Equal(t, "bd", c.Subjects[1].ID)
}

func TestCareer_SetState(t *testing.T) {
	c := sampleCareer()
	require.NoError(t, c.SetState("bd", StateFinal))
	assert.Equal(t, StateFinal, c.Subjects[1].State)

	err := c.SetState("nope", StateFinal)
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestCareer_CloneIsDeep(t *testing.T) {
	c := sampleCareer()
	cp := c.Clone()
	cp.Subjects[0].State = StateFinal
	cp.DisplayName = "Otra"

	assert.Equal(t, StateNo, c.Subjects[0].State)
	assert.Equal(t, "Tecnicatura", c.DisplayName)
	assert.False(t, c.EqualSubjects(cp.Subjects))
}

func TestSubjectsEqual(t *testing.T) {
	a := sampleCareer().Subjects
	b := sampleCareer().Subjects
	assert.True(t, SubjectsEqual(a, b))
	assert.True(t, SubjectsEqual(nil, []Subject{}))

	b[2], b[1] = b[1], b[2]
	assert.False(t, SubjectsEqual(a, b), "order matters")
	assert.False(t, SubjectsEqual(a, a[:2]))
}

func TestCareer_ResolveYear(t *testing.T) {
	c := sampleCareer()
	assert.Equal(t, 2, c.ResolveYear("2"))
	assert.Equal(t, 1, c.ResolveYear(""))
	assert.Equal(t, 1, c.ResolveYear("7"), "stale selection falls back to first year")
	assert.Equal(t, 1, c.ResolveYear("abc"))
	assert.Equal(t, 0, (&Career{}).ResolveYear("1"))
}

func TestDefaultCareer(t *testing.T) {
	c := DefaultCareer()
	require.Len(t, c.Subjects, 6)
	assert.Empty(t, c.DisplayName)

	got := Compute(c)
	assert.Equal(t, 414.0, got.TotalCapacity)
	// 80 + 45 + 0 + 0 + 18 + 67.5
	assert.Equal(t, 210.5, got.EarnedValue)
}
