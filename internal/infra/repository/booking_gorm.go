package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/elite-booking/internal/httperr"
	"github.com/BruksfildServices01/elite-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", serviceID).
		First(&service).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Slot
// --------------------------------------------------

func (r *BookingGormRepository) GetSlot(
	ctx context.Context,
	slotID string,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("id = ?", slotID).
		First(&slot).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("slot_not_found")
		}
		return nil, err
	}
	return &slot, nil
}

func (r *BookingGormRepository) ListAvailableSlots(
	ctx context.Context,
	date string,
	barberID string,
) ([]models.TimeSlot, error) {

	q := r.db.WithContext(ctx).
		Where("date = ? AND is_booked = ?", date, false)

	if barberID != "" {
		q = q.Where("barber_id = ?", barberID)
	}

	var slots []models.TimeSlot
	if err := q.
		Order("created_at ASC, id ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) InsertSlots(
	ctx context.Context,
	slots []models.TimeSlot,
) (int64, error) {

	if len(slots) == 0 {
		return 0, nil
	}

	// o ID do slot é função da tripla (data, hora, barbeiro): regenerar a
	// grade colide por construção e o conflito é simplesmente ignorado
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(slots, 200)

	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// --------------------------------------------------
// Booking (atomic reserve)
// --------------------------------------------------

func (r *BookingGormRepository) BookSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var slot models.TimeSlot
		if err := tx.
			Where("id = ?", ap.SlotID).
			First(&slot).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("slot_not_found")
			}
			return err
		}

		if slot.IsBooked {
			return httperr.ErrBusiness("slot_already_booked")
		}

		ap.Date = slot.Date
		ap.Time = slot.Time
		ap.BarberID = slot.BarberID

		// compare-and-set no flag de reserva: RowsAffected 0 = corrida perdida
		res := tx.Model(&models.TimeSlot{}).
			Where("id = ? AND is_booked = ?", slot.ID, false).
			Updates(map[string]any{
				"is_booked":      true,
				"customer_name":  ap.CustomerName,
				"customer_phone": ap.CustomerPhone,
				"appointment_id": ap.ID,
			})

		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("slot_already_booked")
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", appointmentID).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ReleaseSlot(
	ctx context.Context,
	slotID string,
	appointmentID string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ? AND appointment_id = ?", slotID, appointmentID).
		Updates(map[string]any{
			"is_booked":      false,
			"customer_name":  "",
			"customer_phone": "",
			"appointment_id": nil,
		}).Error
}

// --------------------------------------------------
// Dashboard / reminders
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListDueReminders(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND date = ? AND reminder_sent = ?",
			"confirmed", date, false,
		).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) MarkReminderSent(
	ctx context.Context,
	appointmentID string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("reminder_sent", true).Error
}
