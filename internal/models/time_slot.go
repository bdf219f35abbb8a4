package models

import "time"

// Capacidade de agenda: uma tripla (data, hora, barbeiro).
// O ID é função determinística da tripla — ver booking.SlotID.
type TimeSlot struct {
	ID string `gorm:"primaryKey;size:100" json:"id"`

	Date string `gorm:"size:10;index:idx_slot_date_barber" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5" json:"time"`                             // HH:MM (24h)

	BarberID  string  `gorm:"size:60;index:idx_slot_date_barber" json:"barber_id"`
	ServiceID *string `gorm:"size:60" json:"service_id,omitempty"`

	IsBooked      bool   `gorm:"default:false" json:"is_booked"`
	CustomerName  string `gorm:"size:100" json:"customer_name,omitempty"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone,omitempty"`

	// referência explícita ao agendamento que consumiu o slot;
	// permite liberar o slot no cancelamento
	AppointmentID *string `gorm:"size:60" json:"appointment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
