package booking

import (
	"context"

	"github.com/BruksfildServices01/elite-booking/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		serviceID string,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	ListBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	// -------- Slot (availability / grid) --------
	GetSlot(
		ctx context.Context,
		slotID string,
	) (*models.TimeSlot, error)

	ListAvailableSlots(
		ctx context.Context,
		date string,
		barberID string,
	) ([]models.TimeSlot, error)

	InsertSlots(
		ctx context.Context,
		slots []models.TimeSlot,
	) (int64, error)

	// -------- Booking (atomic reserve) --------
	BookSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ReleaseSlot(
		ctx context.Context,
		slotID string,
		appointmentID string,
	) error

	// -------- Dashboard / reminders --------
	ListAppointmentsForDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListDueReminders(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	MarkReminderSent(
		ctx context.Context,
		appointmentID string,
	) error
}
