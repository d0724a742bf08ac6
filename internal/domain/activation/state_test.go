//go:build unit

package activation_test

import (
	"testing"

	"golden-key-funnel/internal/domain/activation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Transition(t *testing.T) {
	t.Run("allowed transitions", func(t *testing.T) {
		allowed := [][2]activation.State{
			{activation.StateIdle, activation.StateDebounced},
			{activation.StateIdle, activation.StateValidating},
			{activation.StateDebounced, activation.StateValidating},
			{activation.StateValidating, activation.StateValidating},
			{activation.StateValidating, activation.StateApproved},
			{activation.StateValidating, activation.StateNetworkError},
			{activation.StateApproved, activation.StateIdle},
			{activation.StateInvalid, activation.StateDebounced},
		}
		for _, tr := range allowed {
			next, err := tr[0].Transition(tr[1])
			require.NoError(t, err, "%s -> %s", tr[0], tr[1])
			assert.Equal(t, tr[1], next)
		}
	})

	t.Run("outcomes only follow a validation", func(t *testing.T) {
		for _, from := range []activation.State{activation.StateIdle, activation.StateDebounced, activation.StateApproved} {
			next, err := from.Transition(activation.StateClaimed)
			assert.Error(t, err)
			assert.Equal(t, from, next)
		}
	})
}

func TestStateFor(t *testing.T) {
	assert.Equal(t, activation.StateApproved, activation.StateFor(activation.OutcomeApproved))
	assert.Equal(t, activation.StateClaimed, activation.StateFor(activation.OutcomeClaimed))
	assert.Equal(t, activation.StateInvalid, activation.StateFor(activation.OutcomeInvalid))
	assert.Equal(t, activation.StateNetworkError, activation.StateFor(activation.OutcomeNetworkError))
	assert.True(t, activation.StateNetworkError.IsOutcome())
	assert.False(t, activation.StateValidating.IsOutcome())
}

func TestAfterInput(t *testing.T) {
	assert.Equal(t, activation.StateDebounced, activation.AfterInput(activation.StageArmed))
	assert.Equal(t, activation.StateIdle, activation.AfterInput(activation.StagePreview))
	assert.Equal(t, activation.StateIdle, activation.AfterInput(activation.StageHidden))
}
