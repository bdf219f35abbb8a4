package booking

import (
	"context"

	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/models"
)

type ListAvailableSlots struct {
	repo domain.Repository
}

func NewListAvailableSlots(repo domain.Repository) *ListAvailableSlots {
	return &ListAvailableSlots{repo: repo}
}

// Execute filtra a grade pré-gerada: data exata, barbeiro exato quando
// informado ("any" = sem preferência), slots reservados excluídos.
func (uc *ListAvailableSlots) Execute(
	ctx context.Context,
	date string,
	barberID string,
) ([]models.TimeSlot, error) {

	if barberID == domain.AnyBarber {
		barberID = ""
	}

	return uc.repo.ListAvailableSlots(ctx, date, barberID)
}
