package notify

import "github.com/BruksfildServices01/elite-booking/internal/httperr"

// ===============================
// Outcome (toast contract)
// ===============================

// Severidade consumida pela camada de apresentação para renderizar toasts.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
	Warning Severity = "warning"
)

type Outcome struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func Ok(message string) Outcome {
	return Outcome{Severity: Success, Message: message}
}

func Warn(message string) Outcome {
	return Outcome{Severity: Warning, Message: message}
}

func Informational(message string) Outcome {
	return Outcome{Severity: Info, Message: message}
}

// mensagens por código de negócio — cada erro público mapeia para uma
// classe de mensagem distinta, sem expor estrutura interna
var messages = map[string]string{
	"validation_failed":     "Preencha todos os campos obrigatórios.",
	"invalid_phone":         "Telefone inválido.",
	"slot_not_found":        "Horário não encontrado.",
	"slot_already_booked":   "Horário já reservado.",
	"appointment_not_found": "Agendamento não encontrado.",
	"invalid_transition":    "Mudança de status não permitida.",
	"service_not_found":     "Serviço não encontrado.",
	"barber_not_found":      "Barbeiro não encontrado.",
}

// Classify traduz um erro de domínio para o outcome exibível
func Classify(err error) Outcome {
	if code := httperr.BusinessCode(err); code != "" {
		if msg, ok := messages[code]; ok {
			return Outcome{Severity: Error, Message: msg}
		}
	}
	return Outcome{Severity: Error, Message: "Erro inesperado. Tente novamente."}
}
