package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, SignalActive, For(KindDistressSignal).Default())
	assert.Equal(t, RequestPending, For(KindResourceRequest).Default())
	assert.Equal(t, TaskAssigned, For(KindVolunteerTask).Default())
	assert.Equal(t, IncidentReported, For(KindIncident).Default())
}

func TestValidate(t *testing.T) {
	w := For(KindResourceRequest)

	require.NoError(t, w.Validate(RequestApproved))

	err := w.Validate("approved")
	require.ErrorIs(t, err, ErrInvalidStatus)
	assert.ErrorContains(t, err, "Pending, Approved, Declined")

	assert.ErrorIs(t, w.Validate(SignalResolved), ErrInvalidStatus)
}

func TestCanTransition_IsPermissive(t *testing.T) {
	w := For(KindDistressSignal)

	// Любой порядок допустим, включая возврат из Resolved и повтор того же статуса
	assert.NoError(t, w.CanTransition(SignalActive, SignalResolved))
	assert.NoError(t, w.CanTransition(SignalResolved, SignalActive))
	assert.NoError(t, w.CanTransition(SignalInProgress, SignalInProgress))

	assert.ErrorIs(t, w.CanTransition(SignalActive, TaskCompleted), ErrInvalidStatus)
}

func TestStatusesReturnsCopy(t *testing.T) {
	w := For(KindVolunteerTask)
	statuses := w.Statuses()
	statuses[0] = "Mutated"

	assert.Equal(t, TaskAssigned, w.Default())
}

func TestFor_UnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() { For(Kind("weather")) })
}
