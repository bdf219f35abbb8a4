package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/elite-booking/internal/httperr"
	"github.com/BruksfildServices01/elite-booking/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		current Status
		next    Status
		ok      bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
		{Status("garbage"), StatusConfirmed, false},
	}

	for _, tc := range cases {
		err := CanTransition(tc.current, tc.next)
		if tc.ok {
			assert.NoError(t, err, "%s → %s", tc.current, tc.next)
		} else {
			assert.Equal(t, "invalid_transition", httperr.BusinessCode(err),
				"%s → %s", tc.current, tc.next)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus(Status("done")))
	assert.False(t, IsValidStatus(Status("")))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatus())
}

func TestSetStatusStampsTerminalTimestamps(t *testing.T) {
	now := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, SetStatus(ap, StatusCompleted, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)
	assert.Nil(t, ap.CancelledAt)

	ap = &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
	assert.Nil(t, ap.CompletedAt)
}

func TestSetStatusRejectsTerminalMutation(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusCompleted)}
	err := Cancel(ap, now)
	assert.Equal(t, "invalid_transition", httperr.BusinessCode(err))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.Nil(t, ap.CancelledAt)

	ap = &models.Appointment{Status: string(StatusCancelled)}
	err = Complete(ap, now)
	assert.Equal(t, "invalid_transition", httperr.BusinessCode(err))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Nil(t, ap.CompletedAt)
}
