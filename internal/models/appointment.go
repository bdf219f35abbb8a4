package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:60" json:"id"`

	CustomerID    string `gorm:"size:60" json:"customer_id"`
	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`

	BarberID  string `gorm:"size:60;index:idx_appointment_date_barber,priority:2" json:"barber_id"`
	ServiceID string `gorm:"size:60" json:"service_id"`

	// slot que originou o agendamento (correlação por chave, não por valor)
	SlotID string `gorm:"size:100" json:"slot_id"`

	Date string `gorm:"size:10;index:idx_appointment_date_barber,priority:1;index:idx_appointment_status_date,priority:2" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Status       string `gorm:"size:20;default:'confirmed';index:idx_appointment_status_date,priority:1" json:"status"`
	ReminderSent bool   `gorm:"default:false" json:"reminder_sent"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
