package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/models"
)

func TestListAvailableSlotsFilters(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t) // já tem 2024-01-10 10:00 mike

	env.seedSlot(t, "2024-01-10", "10:30", "mike")
	env.seedSlot(t, "2024-01-10", "10:00", "carlos")
	env.seedSlot(t, "2024-01-11", "10:00", "mike") // outra data

	uc := NewListAvailableSlots(env.repo)

	slots, err := uc.Execute(context.Background(), "2024-01-10", "mike")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.Equal(t, "mike", s.BarberID)
		assert.Equal(t, "2024-01-10", s.Date)
	}
}

func TestListAvailableSlotsAnyBarber(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	env.seedSlot(t, "2024-01-10", "10:00", "carlos")

	uc := NewListAvailableSlots(env.repo)

	// "any" = sem preferência: slots de todos os barbeiros
	slots, err := uc.Execute(context.Background(), "2024-01-10", domain.AnyBarber)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	barbers := map[string]bool{}
	for _, s := range slots {
		barbers[s.BarberID] = true
	}
	assert.True(t, barbers["mike"])
	assert.True(t, barbers["carlos"])
}

func TestListAvailableSlotsExcludesBooked(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	env.seedSlot(t, "2024-01-10", "10:30", "mike")

	book := NewBookSlot(env.repo, env.sender, env.audit)
	_, err := book.Execute(context.Background(),
		janeInput(domain.SlotID("2024-01-10", "10:00", "mike")))
	require.NoError(t, err)

	uc := NewListAvailableSlots(env.repo)
	slots, err := uc.Execute(context.Background(), "2024-01-10", "mike")
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, "10:30", slots[0].Time)
}

func TestListAvailableSlotsPreservesInsertionOrder(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)

	// inserido depois do 10:00, com carimbo explícito para fixar a ordem
	late := env.slot(t, domain.SlotID("2024-01-10", "10:00", "mike")).CreatedAt.Add(time.Second)
	require.NoError(t, env.db.Create(&models.TimeSlot{
		ID:        domain.SlotID("2024-01-10", "09:00", "mike"),
		Date:      "2024-01-10",
		Time:      "09:00",
		BarberID:  "mike",
		CreatedAt: late,
	}).Error)

	uc := NewListAvailableSlots(env.repo)
	slots, err := uc.Execute(context.Background(), "2024-01-10", "mike")
	require.NoError(t, err)

	require.Len(t, slots, 2)
	// ordem de inserção, não ordem de horário
	assert.Equal(t, "10:00", slots[0].Time)
	assert.Equal(t, "09:00", slots[1].Time)
}
