package models

import "time"

// Serviço do catálogo (corte, barba, etc.) — o agendamento referencia pelo ID,
// nunca copia os campos; o preço é sempre consultado ao vivo.
type Service struct {
	ID string `gorm:"primaryKey;size:60" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration"`
	Price       float64 `json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
