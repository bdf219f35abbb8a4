package booking

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/elite-booking/internal/models"
)

// AnyBarber é o pseudo-barbeiro "sem preferência" aceito em consultas de
// disponibilidade; nunca pode ser persistido em TimeSlot ou Appointment.
const AnyBarber = "any"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// SlotID é função determinística pura da tripla (data, hora, barbeiro);
// a geração da grade depende da colisão de IDs para evitar duplicatas.
func SlotID(date, timeOfDay, barberID string) string {
	return fmt.Sprintf("%s-%s-%s", date, timeOfDay, barberID)
}

// ===============================
// Week grid
// ===============================

type GridConfig struct {
	Days          int
	OpenHour      int
	CloseHour     int
	StepMinutes   int
	ClosedWeekday time.Weekday
}

func DefaultGridConfig() GridConfig {
	return GridConfig{
		Days:          7,
		OpenHour:      9,
		CloseHour:     18,
		StepMinutes:   30,
		ClosedWeekday: time.Sunday,
	}
}

// GenerateWeekGrid emite a grade completa de slots para os dias corridos a
// partir de startDate: um slot por barbeiro em cada tick de [OpenHour, CloseHour).
// A fatia segue a ordem de inserção dia → horário → barbeiro, sem ordenação extra.
func GenerateWeekGrid(startDate time.Time, barbers []models.Barber, cfg GridConfig) []models.TimeSlot {
	var slots []models.TimeSlot

	for dayOffset := 0; dayOffset < cfg.Days; dayOffset++ {
		day := startDate.AddDate(0, 0, dayOffset)

		if day.Weekday() == cfg.ClosedWeekday {
			continue
		}

		dateStr := day.Format(DateLayout)

		for hour := cfg.OpenHour; hour < cfg.CloseHour; hour++ {
			for minute := 0; minute < 60; minute += cfg.StepMinutes {
				timeStr := fmt.Sprintf("%02d:%02d", hour, minute)

				for _, barber := range barbers {
					slots = append(slots, models.TimeSlot{
						ID:       SlotID(dateStr, timeStr, barber.ID),
						Date:     dateStr,
						Time:     timeStr,
						BarberID: barber.ID,
					})
				}
			}
		}
	}

	return slots
}
