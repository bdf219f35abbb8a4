package handlers

import (
	"time"

	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/timezone"
)

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		domain.DateLayout,
		dateStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}

// data de hoje no fuso da barbearia, no formato da API
func todayString() string {
	return timezone.Now().Format(domain.DateLayout)
}

func isValidTime(timeStr string) bool {
	_, err := time.Parse(domain.TimeLayout, timeStr)
	return err == nil
}
