package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action   string `gorm:"size:60;not null" json:"action"`
	Entity   string `gorm:"size:60" json:"entity"`
	EntityID string `gorm:"size:100" json:"entity_id"`

	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
