package models

import (
	"strings"
	"time"
)

type Barber struct {
	ID string `gorm:"primaryKey;size:60" json:"id"`

	Name string `gorm:"size:100;not null" json:"name"`

	// lista de especialidades serializada como CSV ("Classic Cuts,Beard Styling")
	Specialties string `gorm:"size:255" json:"-"`

	Avatar string  `gorm:"size:255" json:"avatar"`
	Rating float64 `json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barber) SpecialtyList() []string {
	if b.Specialties == "" {
		return []string{}
	}
	return strings.Split(b.Specialties, ",")
}

func (b *Barber) SetSpecialties(list []string) {
	b.Specialties = strings.Join(list, ",")
}
