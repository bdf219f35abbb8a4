package booking

import "github.com/BruksfildServices01/elite-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transições permitidas; completed e cancelled são terminais
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func IsValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// ===============================
// Validations
// ===============================

// CanTransition valida uma mudança de status contra a máquina de estados
func CanTransition(current, next Status) error {
	allowed, ok := transitions[current]
	if !ok {
		return httperr.ErrBusiness("invalid_transition")
	}
	for _, s := range allowed {
		if s == next {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

// o fluxo de reserva sempre cria agendamentos já confirmados;
// pending fica reservado para integrações externas futuras
func InitialStatus() Status {
	return StatusConfirmed
}
