package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/elite-booking/internal/audit"
	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/httperr"
	"github.com/BruksfildServices01/elite-booking/internal/messaging"
	"github.com/BruksfildServices01/elite-booking/internal/models"
	"github.com/BruksfildServices01/elite-booking/internal/timezone"
	"github.com/BruksfildServices01/elite-booking/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BookSlotInput struct {
	SlotID        string
	CustomerName  string
	CustomerPhone string
	ServiceID     string
}

type BookSlotOutput struct {
	Appointment *models.Appointment

	// resultado da confirmação por WhatsApp; falha de entrega nunca
	// desfaz a reserva, só vira warning para o chamador
	ConfirmationDelivered bool
}

// ======================================================
// USE CASE
// ======================================================

type BookSlot struct {
	repo   domain.Repository
	sender messaging.Sender
	audit  *audit.Dispatcher
}

func NewBookSlot(
	repo domain.Repository,
	sender messaging.Sender,
	audit *audit.Dispatcher,
) *BookSlot {
	return &BookSlot{
		repo:   repo,
		sender: sender,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookSlot) Execute(
	ctx context.Context,
	in BookSlotInput,
) (*BookSlotOutput, error) {

	// --------------------------------------------------
	// 1️⃣ Validação de entrada
	// --------------------------------------------------
	if strings.TrimSpace(in.SlotID) == "" ||
		strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.ServiceID) == "" {
		return nil, httperr.ErrBusiness("validation_failed")
	}

	if !validators.IsPhoneValid(in.CustomerPhone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	// --------------------------------------------------
	// 2️⃣ Serviço precisa existir no catálogo
	// --------------------------------------------------
	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Reserva atômica: trava o slot e cria o agendamento
	// --------------------------------------------------
	ap := &models.Appointment{
		ID:            uuid.NewString(),
		CustomerID:    uuid.NewString(),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		ServiceID:     in.ServiceID,
		SlotID:        in.SlotID,
		Status:        string(domain.InitialStatus()),
		ReminderSent:  false,
		CreatedAt:     timezone.Now(),
	}

	if err := uc.repo.BookSlot(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Confirmação (fire-and-forget: falha não desfaz nada)
	// --------------------------------------------------
	delivered := uc.sender.Send(
		ctx,
		ap.CustomerPhone,
		messaging.ConfirmationMessage(ap.CustomerName, ap.Date, ap.Time),
	)

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "slot_booked",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"slot_id":   ap.SlotID,
			"delivered": delivered,
		},
	})

	return &BookSlotOutput{
		Appointment:           ap,
		ConfirmationDelivered: delivered,
	}, nil
}
