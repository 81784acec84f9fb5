package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_MixedStates(t *testing.T) {
	c := &Career{Subjects: []Subject{
		{ID: "a", Hours: 80, State: StateFinal, Year: 1},
		{ID: "b", Hours: 60, State: StateCursada, Year: 1},
		{ID: "c", Hours: 60, State: StateNo, Year: 2},
	}}

	got := Compute(c)
	assert.Equal(t, 200.0, got.TotalCapacity)
	assert.Equal(t, 125.0, got.EarnedValue)
	assert.InDelta(t, 62.5, got.Percentage, 1e-9)
	assert.Equal(t, 3, got.SubjectCount)
	assert.False(t, got.Complete())
}

func TestCompute_Empty(t *testing.T) {
	got := Compute(&Career{})
	assert.Equal(t, 0.0, got.TotalCapacity)
	assert.Equal(t, 0.0, got.EarnedValue)
	assert.Equal(t, 0.0, got.Percentage)

	assert.Equal(t, Totals{}, Compute(nil))
}

func TestCompute_UnknownStateWeighsZero(t *testing.T) {
	c := &Career{Subjects: []Subject{
		{ID: "a", Hours: 50, State: "aprobada", Year: 1},
		{ID: "b", Hours: 50, State: StateEquivalencia, Year: 1},
	}}

	got := Compute(c)
	assert.Equal(t, 100.0, got.TotalCapacity)
	assert.Equal(t, 50.0, got.EarnedValue)
	assert.InDelta(t, 50.0, got.Percentage, 1e-9)
}

func TestCompute_AllFinalIsComplete(t *testing.T) {
	c := &Career{Subjects: []Subject{
		{ID: "a", Hours: 10, State: StateFinal, Year: 1},
		{ID: "b", Hours: 30, State: StateEquivalencia, Year: 2},
	}}
	got := Compute(c)
	assert.InDelta(t, 100.0, got.Percentage, 1e-9)
	assert.True(t, got.Complete())
}

func TestComputeYear(t *testing.T) {
	c := &Career{Subjects: []Subject{
		{ID: "a", Hours: 80, State: StateFinal, Year: 1},
		{ID: "b", Hours: 40, State: StateCursando, Year: 2},
		{ID: "c", Hours: 60, State: StateNo, Year: 2},
	}}

	y2 := ComputeYear(c, 2)
	assert.Equal(t, 2, y2.SubjectCount)
	assert.Equal(t, 100.0, y2.TotalCapacity)
	assert.Equal(t, 10.0, y2.EarnedValue)

	none := ComputeYear(c, 5)
	assert.Equal(t, Totals{}, none)
}

func TestCompute_BoundsHoldForRandomCareers(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	states := append(States(), "desconocido")

	for i := 0; i < 500; i++ {
		n := rng.Intn(20)
		c := &Career{}
		for j := 0; j < n; j++ {
			c.Subjects = append(c.Subjects, Subject{
				ID:    "s",
				Hours: float64(1 + rng.Intn(200)),
				State: states[rng.Intn(len(states))],
				Year:  1 + rng.Intn(5),
			})
		}

		got := Compute(c)
		require.GreaterOrEqual(t, got.Percentage, 0.0)
		require.LessOrEqual(t, got.Percentage, 100.0+1e-9)
		require.LessOrEqual(t, got.EarnedValue, got.TotalCapacity)
		if got.TotalCapacity == 0 {
			require.Equal(t, 0.0, got.Percentage)
		}
	}
}
