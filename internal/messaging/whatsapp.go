package messaging

import (
	"context"
	"log"
	"time"
)

// WhatsAppSender simula o provedor de WhatsApp: loga a mensagem e responde
// sucesso de forma determinística. O delay imita a latência do provedor real.
type WhatsAppSender struct {
	delay time.Duration
}

func NewWhatsAppSender(delay time.Duration) *WhatsAppSender {
	return &WhatsAppSender{delay: delay}
}

func (s *WhatsAppSender) Send(ctx context.Context, phone string, message string) bool {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return false
		}
	}

	log.Printf("whatsapp -> %s: %s", phone, message)
	return true
}
