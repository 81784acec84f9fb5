package domain

import (
	"fmt"
	"strings"
)

// State is the completion state of a subject.
type State string

const (
	StateNo           State = "no"
	StateCursando     State = "cursando"
	StateCursada      State = "cursada"
	StateFinal        State = "final"
	StateEquivalencia State = "equivalencia"
)

// stateWeights is the fixed credit granted per state.
var stateWeights = map[State]float64{
	StateNo:           0,
	StateCursando:     0.25,
	StateCursada:      0.75,
	StateFinal:        1,
	StateEquivalencia: 1,
}

var stateOrder = []State{StateNo, StateCursando, StateCursada, StateFinal, StateEquivalencia}

// States returns every known state in canonical order.
func States() []State {
	out := make([]State, len(stateOrder))
	copy(out, stateOrder)
	return out
}

// Weight returns the credit for s. Tags outside the table weigh 0; stored and
// imported documents may carry them and must still compute.
func Weight(s State) float64 {
	return stateWeights[s]
}

// Valid reports whether s is a key of the weight table.
func (s State) Valid() bool {
	_, ok := stateWeights[s]
	return ok
}

// ParseState validates a user-supplied tag. Matching is case-insensitive.
func ParseState(raw string) (State, error) {
	s := State(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		names := make([]string, len(stateOrder))
		for i, st := range stateOrder {
			names[i] = string(st)
		}
		return "", fmt.Errorf("invalid state %q (expected one of %s): %w", raw, strings.Join(names, ", "), ErrFormat)
	}
	return s, nil
}

// Next returns the state after s in canonical order, wrapping around.
// Unknown tags advance to the first state.
func (s State) Next() State {
	for i, st := range stateOrder {
		if st == s {
			return stateOrder[(i+1)%len(stateOrder)]
		}
	}
	return stateOrder[0]
}

// Prev is the inverse of Next.
func (s State) Prev() State {
	for i, st := range stateOrder {
		if st == s {
			return stateOrder[(i+len(stateOrder)-1)%len(stateOrder)]
		}
	}
	return stateOrder[0]
}

// Label returns the display label for s.
func (s State) Label() string {
	switch s {
	case StateNo:
		return "No cursada"
	case StateCursando:
		return "Cursando"
	case StateCursada:
		return "Cursada aprobada"
	case StateFinal:
		return "Final aprobada"
	case StateEquivalencia:
		return "Equivalencia"
	default:
		return string(s)
	}
}
