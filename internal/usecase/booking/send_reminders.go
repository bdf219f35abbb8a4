package booking

import (
	"context"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/BruksfildServices01/elite-booking/internal/audit"
	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/messaging"
)

type SendReminders struct {
	repo   domain.Repository
	sender messaging.Sender
	audit  *audit.Dispatcher

	// duas varreduras simultâneas da mesma data enviariam lembretes em dobro
	group singleflight.Group
}

func NewSendReminders(
	repo domain.Repository,
	sender messaging.Sender,
	audit *audit.Dispatcher,
) *SendReminders {
	return &SendReminders{
		repo:   repo,
		sender: sender,
		audit:  audit,
	}
}

// Execute envia os lembretes pendentes da data e devolve quantos saíram.
// Falha individual de entrega pula o item (a flag continua false) e a
// varredura segue — sucesso parcial é esperado.
func (uc *SendReminders) Execute(
	ctx context.Context,
	date string,
) (int, error) {

	count, err, _ := uc.group.Do(date, func() (any, error) {
		return uc.sweep(ctx, date)
	})
	if err != nil {
		return 0, err
	}

	return count.(int), nil
}

func (uc *SendReminders) sweep(
	ctx context.Context,
	date string,
) (int, error) {

	due, err := uc.repo.ListDueReminders(ctx, date)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, ap := range due {
		ok := uc.sender.Send(
			ctx,
			ap.CustomerPhone,
			messaging.ReminderMessage(ap.Time),
		)
		if !ok {
			log.Printf("reminder not delivered for appointment %s", ap.ID)
			continue
		}

		if err := uc.repo.MarkReminderSent(ctx, ap.ID); err != nil {
			log.Printf("failed to flag reminder for %s: %v", ap.ID, err)
			continue
		}

		sent++
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reminders_sent",
		Entity:   "appointment",
		EntityID: date,
		Metadata: map[string]any{
			"eligible": len(due),
			"sent":     sent,
		},
	})

	return sent, nil
}
