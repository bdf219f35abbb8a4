package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/elite-booking/internal/audit"
	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
)

type GenerateWeekGrid struct {
	repo  domain.Repository
	cfg   domain.GridConfig
	audit *audit.Dispatcher
}

func NewGenerateWeekGrid(
	repo domain.Repository,
	cfg domain.GridConfig,
	audit *audit.Dispatcher,
) *GenerateWeekGrid {
	return &GenerateWeekGrid{
		repo:  repo,
		cfg:   cfg,
		audit: audit,
	}
}

type GenerateWeekGridOutput struct {
	Generated int   `json:"generated"`
	Inserted  int64 `json:"inserted"`
}

// Execute gera a grade de 7 dias a partir de startDate para todos os
// barbeiros do catálogo. Regerar a mesma janela é seguro: os IDs colidem
// por construção e os já existentes são ignorados na inserção.
func (uc *GenerateWeekGrid) Execute(
	ctx context.Context,
	startDate time.Time,
) (*GenerateWeekGridOutput, error) {

	barbers, err := uc.repo.ListBarbers(ctx)
	if err != nil {
		return nil, err
	}

	slots := domain.GenerateWeekGrid(startDate, barbers, uc.cfg)

	inserted, err := uc.repo.InsertSlots(ctx, slots)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "grid_generated",
		Entity:   "time_slot",
		EntityID: startDate.Format(domain.DateLayout),
		Metadata: map[string]any{
			"generated": len(slots),
			"inserted":  inserted,
		},
	})

	return &GenerateWeekGridOutput{
		Generated: len(slots),
		Inserted:  inserted,
	}, nil
}
