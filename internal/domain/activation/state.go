package activation

import "golden-key-funnel/internal/pkg/errs"

type State string

const (
	StateIdle         State = "idle"
	StateDebounced    State = "debounced"
	StateValidating   State = "validating"
	StateApproved     State = "approved"
	StateClaimed      State = "claimed"
	StateInvalid      State = "invalid"
	StateNetworkError State = "network_error"
)

var outcomeStates = []State{StateApproved, StateClaimed, StateInvalid, StateNetworkError}

// transitions lists the allowed next states. Validating -> Validating is a superseding attempt,
// Validating -> Idle a refused one.
var transitions = map[State][]State{
	StateIdle:       {StateIdle, StateDebounced, StateValidating},
	StateDebounced:  {StateIdle, StateDebounced, StateValidating},
	StateValidating: append([]State{StateIdle, StateValidating, StateDebounced}, outcomeStates...),
}

func init() {
	for _, s := range outcomeStates {
		transitions[s] = []State{StateIdle, StateDebounced, StateValidating}
	}
}

func (s State) CanTransition(to State) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s State) Transition(to State) (State, error) {
	if !s.CanTransition(to) {
		return s, errs.Newf("activation: invalid transition %s -> %s", s, to)
	}
	return to, nil
}

func (s State) IsOutcome() bool {
	for _, o := range outcomeStates {
		if s == o {
			return true
		}
	}
	return false
}

// AfterInput is the state a key input change leads to.
func AfterInput(stage InputStage) State {
	if stage == StageArmed {
		return StateDebounced
	}
	return StateIdle
}

func StateFor(o Outcome) State {
	switch o {
	case OutcomeApproved:
		return StateApproved
	case OutcomeClaimed:
		return StateClaimed
	case OutcomeInvalid:
		return StateInvalid
	default:
		return StateNetworkError
	}
}
