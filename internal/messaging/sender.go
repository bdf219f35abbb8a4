package messaging

import "context"

// Sender é o colaborador de mensageria (WhatsApp/SMS).
// O retorno é autoritativo: false significa não entregue, sem retry implícito.
type Sender interface {
	Send(ctx context.Context, phone string, message string) bool
}
