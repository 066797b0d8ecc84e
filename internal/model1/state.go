package model1

import "fmt"

// LoadingState represents the page state of an async table.
type LoadingState int

const (
	// StateIdle means no fetch is in flight.
	StateIdle LoadingState = iota

	// StateLoading means the first page is being fetched.
	StateLoading

	// StateLoadingMore means a follow-up page is being fetched.
	StateLoadingMore

	// StateError means the last fetch failed.
	StateError
)

func (s LoadingState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoadingMore:
		return "loadingMore"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// IsLoading returns true while a fetch is in flight.
func (s LoadingState) IsLoading() bool {
	return s == StateLoading || s == StateLoadingMore
}

var transitions = map[LoadingState][]LoadingState{
	StateIdle:        {StateLoading, StateLoadingMore},
	StateLoading:     {StateIdle, StateError},
	StateLoadingMore: {StateIdle, StateError},
	StateError:       {StateLoading, StateLoadingMore},
}

// CanTransition returns true if the state machine allows from -> to.
func CanTransition(from, to LoadingState) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition validates a state change.
func (s LoadingState) Transition(to LoadingState) (LoadingState, error) {
	if !CanTransition(s, to) {
		return s, fmt.Errorf("%s -> %s: %w", s, to, ErrIllegalTransition)
	}
	return to, nil
}
