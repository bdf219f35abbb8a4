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

func TestGenerateWeekGridInsertsFullWeek(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t) // mike + carlos

	uc := NewGenerateWeekGrid(env.repo, domain.DefaultGridConfig(), env.audit)

	// segunda-feira: 6 dias abertos × 18 horários × 2 barbeiros
	start := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	out, err := uc.Execute(context.Background(), start)
	require.NoError(t, err)

	want := 6 * 18 * 2
	assert.Equal(t, want, out.Generated)
	assert.EqualValues(t, want, out.Inserted)

	var count int64
	require.NoError(t, env.db.Model(&models.TimeSlot{}).
		Where("date >= ?", "2024-02-05").Count(&count).Error)
	assert.EqualValues(t, want, count)
}

func TestGenerateWeekGridIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)

	uc := NewGenerateWeekGrid(env.repo, domain.DefaultGridConfig(), env.audit)
	start := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	first, err := uc.Execute(context.Background(), start)
	require.NoError(t, err)

	// reserva um slot da janela e regenera: nada é duplicado nem liberado
	book := NewBookSlot(env.repo, env.sender, env.audit)
	slotID := domain.SlotID("2024-02-05", "09:00", "mike")
	_, err = book.Execute(context.Background(), janeInput(slotID))
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), start)
	require.NoError(t, err)

	assert.Equal(t, first.Generated, second.Generated)
	assert.EqualValues(t, 0, second.Inserted)

	slot := env.slot(t, slotID)
	assert.True(t, slot.IsBooked)
	assert.Equal(t, "Jane Doe", slot.CustomerName)
}

func TestGenerateWeekGridPartialOverlap(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)

	uc := NewGenerateWeekGrid(env.repo, domain.DefaultGridConfig(), env.audit)

	_, err := uc.Execute(context.Background(), time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// janela deslocada em 1 dia: só o dia novo entra
	out, err := uc.Execute(context.Background(), time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// 2024-02-12 é o único dia inédito (segunda-feira seguinte)
	assert.EqualValues(t, 18*2, out.Inserted)
}
