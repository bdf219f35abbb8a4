package models

import "time"

// Janela de disponibilidade editada pelo barbeiro no painel.
// Não é reconciliada com a grade de TimeSlots — apenas CRUD.
type AvailabilitySlot struct {
	ID string `gorm:"primaryKey;size:60" json:"id"`

	BarberID  string `gorm:"size:60;index" json:"barber_id"`
	Date      string `gorm:"size:10" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
