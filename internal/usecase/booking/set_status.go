package booking

import (
	"context"
	"log"

	"github.com/BruksfildServices01/elite-booking/internal/audit"
	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/messaging"
	"github.com/BruksfildServices01/elite-booking/internal/models"
	"github.com/BruksfildServices01/elite-booking/internal/timezone"
)

type SetAppointmentStatus struct {
	repo   domain.Repository
	sender messaging.Sender
	audit  *audit.Dispatcher
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	sender messaging.Sender,
	audit *audit.Dispatcher,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:   repo,
		sender: sender,
		audit:  audit,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID string,
	next domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := domain.SetStatus(ap, next, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if next == domain.StatusCancelled {
		uc.notifyCancellation(ctx, ap)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_" + string(next),
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}

// cancelamento libera o slot de origem e avisa o cliente uma única vez
func (uc *SetAppointmentStatus) notifyCancellation(
	ctx context.Context,
	ap *models.Appointment,
) {

	if ap.SlotID != "" {
		if err := uc.repo.ReleaseSlot(ctx, ap.SlotID, ap.ID); err != nil {
			log.Printf("failed to release slot %s: %v", ap.SlotID, err)
		}
	}

	uc.sender.Send(
		ctx,
		ap.CustomerPhone,
		messaging.CancellationMessage(ap.CustomerName, ap.Date, ap.Time),
	)
}
