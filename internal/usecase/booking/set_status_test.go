package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/httperr"
)

// reserva um horário e devolve (appointmentID, slotID)
func bookFixture(t *testing.T, env *testEnv) (string, string) {
	t.Helper()

	uc := NewBookSlot(env.repo, env.sender, env.audit)
	slotID := domain.SlotID("2024-01-10", "10:00", "mike")
	out, err := uc.Execute(context.Background(), janeInput(slotID))
	require.NoError(t, err)
	return out.Appointment.ID, slotID
}

func TestSetStatusComplete(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	apID, slotID := bookFixture(t, env)

	uc := NewSetAppointmentStatus(env.repo, env.sender, env.audit)
	ap, err := uc.Execute(context.Background(), apID, domain.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	stored := env.appointment(t, apID)
	assert.Equal(t, string(domain.StatusCompleted), stored.Status)

	// conclusão não mexe no slot nem manda mensagem
	assert.True(t, env.slot(t, slotID).IsBooked)
	assert.Equal(t, 1, env.sender.deliveries()) // só a confirmação da reserva
}

func TestSetStatusCancelReleasesSlot(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	apID, slotID := bookFixture(t, env)

	uc := NewSetAppointmentStatus(env.repo, env.sender, env.audit)
	ap, err := uc.Execute(context.Background(), apID, domain.StatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)

	slot := env.slot(t, slotID)
	assert.False(t, slot.IsBooked)
	assert.Empty(t, slot.CustomerName)
	assert.Empty(t, slot.CustomerPhone)
	assert.Nil(t, slot.AppointmentID)

	// exatamente um aviso de cancelamento, citando nome e horário
	msgs := env.sender.messagesTo("+15551234567")
	require.Len(t, msgs, 2) // confirmação + cancelamento
	assert.True(t, containsAll(msgs[1], "Jane Doe", "2024-01-10", "10:00"),
		"aviso de cancelamento incompleto: %q", msgs[1])
}

func TestSetStatusCancelledSlotCanBeRebooked(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	apID, slotID := bookFixture(t, env)

	setStatus := NewSetAppointmentStatus(env.repo, env.sender, env.audit)
	_, err := setStatus.Execute(context.Background(), apID, domain.StatusCancelled)
	require.NoError(t, err)

	book := NewBookSlot(env.repo, env.sender, env.audit)
	in := janeInput(slotID)
	in.CustomerName = "Bob Roberts"
	in.CustomerPhone = "+15559876543"
	out, err := book.Execute(context.Background(), in)
	require.NoError(t, err)

	slot := env.slot(t, slotID)
	assert.True(t, slot.IsBooked)
	assert.Equal(t, "Bob Roberts", slot.CustomerName)
	require.NotNil(t, slot.AppointmentID)
	assert.Equal(t, out.Appointment.ID, *slot.AppointmentID)
}

func TestSetStatusTerminalIsFinal(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	apID, slotID := bookFixture(t, env)

	uc := NewSetAppointmentStatus(env.repo, env.sender, env.audit)
	_, err := uc.Execute(context.Background(), apID, domain.StatusCompleted)
	require.NoError(t, err)

	before := env.sender.deliveries()

	_, err = uc.Execute(context.Background(), apID, domain.StatusCancelled)
	assert.Equal(t, "invalid_transition", httperr.BusinessCode(err))

	// transição recusada não tem efeito colateral
	stored := env.appointment(t, apID)
	assert.Equal(t, string(domain.StatusCompleted), stored.Status)
	assert.Nil(t, stored.CancelledAt)
	assert.True(t, env.slot(t, slotID).IsBooked)
	assert.Equal(t, before, env.sender.deliveries())
}

func TestSetStatusUnknownAppointment(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)

	uc := NewSetAppointmentStatus(env.repo, env.sender, env.audit)
	_, err := uc.Execute(context.Background(), "nope", domain.StatusCancelled)
	assert.Equal(t, "appointment_not_found", httperr.BusinessCode(err))
}
