package seed

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/models"
	"github.com/BruksfildServices01/elite-booking/internal/timezone"
)

// Fixture determinística do catálogo e da grade — sem aleatoriedade,
// para que dois boots idênticos produzam exatamente o mesmo estado.

func Services() []models.Service {
	return []models.Service{
		{ID: "haircut", Name: "Classic Haircut", DurationMin: 45, Price: 35, Description: "Professional haircut with wash and style", Active: true},
		{ID: "beard-haircut", Name: "Haircut + Beard Trim", DurationMin: 60, Price: 50, Description: "Complete grooming with haircut and beard styling", Active: true},
		{ID: "beard-only", Name: "Beard Trim & Style", DurationMin: 30, Price: 25, Description: "Precision beard trimming and styling", Active: true},
		{ID: "hot-towel", Name: "Hot Towel Shave", DurationMin: 45, Price: 40, Description: "Traditional hot towel shave experience", Active: true},
		{ID: "deluxe", Name: "Deluxe Package", DurationMin: 90, Price: 75, Description: "Complete grooming: haircut, beard, hot towel, and styling", Active: true},
		{ID: "kids", Name: "Kids Haircut", DurationMin: 30, Price: 20, Description: "Special haircut service for children under 12", Active: true},
	}
}

func Barbers() []models.Barber {
	return []models.Barber{
		{ID: "mike", Name: "Mike Johnson", Specialties: "Classic Cuts,Beard Styling", Avatar: "/avatars/mike.jpg", Rating: 4.8},
		{ID: "carlos", Name: "Carlos Rodriguez", Specialties: "Modern Styles,Hot Towel Shaves", Avatar: "/avatars/carlos.jpg", Rating: 4.9},
		{ID: "david", Name: "David Kim", Specialties: "Fade Cuts,Kids Cuts", Avatar: "/avatars/david.jpg", Rating: 4.7},
	}
}

// Run popula catálogo, grade da semana e um agendamento de exemplo.
// No-op quando o catálogo já existe.
func Run(db *gorm.DB, cfg domain.GridConfig) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	services := Services()
	barbers := Barbers()

	if err := db.Create(&services).Error; err != nil {
		return err
	}
	if err := db.Create(&barbers).Error; err != nil {
		return err
	}

	today := timezone.Now()
	slots := domain.GenerateWeekGrid(today, barbers, cfg)

	// pré-reserva determinística de ~20% da grade (cada 5º slot):
	// walk-ins sem agendamento associado, como na carga original
	for i := range slots {
		if i%5 == 4 {
			slots[i].IsBooked = true
			slots[i].CustomerName = "John Doe"
			slots[i].CustomerPhone = "+1234567890"
		}
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(slots, 200).Error; err != nil {
		return err
	}

	if err := sampleAppointment(db, today.Format(domain.DateLayout)); err != nil {
		return err
	}

	log.Printf("seeded %d services, %d barbers, %d slots",
		len(services), len(barbers), len(slots))
	return nil
}

// agendamento confirmado de exemplo para o painel (hoje às 10:00 com o Mike);
// pulado quando a barbearia está fechada hoje ou o slot caiu na pré-reserva
func sampleAppointment(db *gorm.DB, date string) error {
	slotID := domain.SlotID(date, "10:00", "mike")

	var slot models.TimeSlot
	if err := db.Where("id = ? AND is_booked = ?", slotID, false).
		First(&slot).Error; err != nil {
		return nil
	}

	ap := models.Appointment{
		ID:            uuid.NewString(),
		CustomerID:    "cust-john-smith",
		CustomerName:  "John Smith",
		CustomerPhone: "+1234567890",
		BarberID:      "mike",
		ServiceID:     "haircut",
		SlotID:        slotID,
		Date:          date,
		Time:          "10:00",
		Status:        string(domain.StatusConfirmed),
		ReminderSent:  false,
	}

	if err := db.Create(&ap).Error; err != nil {
		return err
	}

	return db.Model(&models.TimeSlot{}).
		Where("id = ?", slotID).
		Updates(map[string]any{
			"is_booked":      true,
			"customer_name":  ap.CustomerName,
			"customer_phone": ap.CustomerPhone,
			"appointment_id": ap.ID,
		}).Error
}
