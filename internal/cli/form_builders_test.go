package cli

import (
	"testing"

	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubjectSpec(t *testing.T) {
	tests := []struct {
		spec string
		want domain.Subject
	}{
		{"2:96:Práctica", domain.Subject{Name: "Práctica", Hours: 96, Year: 2, State: domain.StateNo}},
		{" Pedagogía ", domain.Subject{Name: "Pedagogía", Hours: 64, Year: 1, State: domain.StateNo}},
		{"::Sin datos", domain.Subject{Name: "Sin datos", Hours: 64, Year: 1, State: domain.StateNo}},
		{"3:40.5:Taller: Redes", domain.Subject{Name: "Taller: Redes", Hours: 40.5, Year: 3, State: domain.StateNo}},
		{"1:0:Vacía", domain.Subject{Name: "Vacía", Hours: 0, Year: 1, State: domain.StateNo}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := parseSubjectSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSubjectSpec_Errors(t *testing.T) {
	for _, spec := range []string{"1:Algo", "x:64:Algo", "1:muchas:Algo", "7:64:Algo"} {
		_, err := parseSubjectSpec(spec)
		assert.Error(t, err, spec)
	}
}

func TestParseSubjectSpecs_SkipsBlankLinesAndCollectsErrors(t *testing.T) {
	subjects, err := parseSubjectSpecs([]string{"1:64:Uno", "", "  ", "2:32:Dos"})
	require.NoError(t, err)
	assert.Len(t, subjects, 2)

	_, err = parseSubjectSpecs([]string{"x:1:A", "1:y:B"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x:1:A"`)
	assert.Contains(t, err.Error(), `"1:y:B"`)
}

func TestFormatSubjectSpecs_RoundTrips(t *testing.T) {
	in := []domain.Subject{
		{Name: "Uno", Hours: 64, Year: 1, State: domain.StateNo},
		{Name: "Dos: avanzada", Hours: 40.5, Year: 2, State: domain.StateNo},
	}
	text := formatSubjectSpecs(in)
	assert.Equal(t, "1:64:Uno\n2:40.5:Dos: avanzada", text)

	out, err := parseSubjectSpecs([]string{"1:64:Uno", "2:40.5:Dos: avanzada"})
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestKeepSubjectIdentity(t *testing.T) {
	before := []domain.Subject{
		{ID: "a", Name: "Uno", State: domain.StateFinal},
		{ID: "b", Name: "Dos", State: domain.StateCursando},
	}
	after := []domain.Subject{
		{Name: "Dos", State: domain.StateNo},
		{Name: "Tres", State: domain.StateNo},
	}

	got := keepSubjectIdentity(before, after)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, domain.StateCursando, got[0].State)
	assert.Empty(t, got[1].ID)
	assert.Equal(t, domain.StateNo, got[1].State)
}
