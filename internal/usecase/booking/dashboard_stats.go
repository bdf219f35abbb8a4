package booking

import (
	"context"

	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/dto"
	"github.com/BruksfildServices01/elite-booking/internal/models"
)

type DashboardStats struct {
	repo domain.Repository
}

func NewDashboardStats(repo domain.Repository) *DashboardStats {
	return &DashboardStats{repo: repo}
}

// Execute computa os números do painel para a data: total de agendamentos,
// clientes distintos, receita dos concluídos e duração média de serviço.
// O preço é sempre o do catálogo atual — o agendamento não guarda snapshot.
func (uc *DashboardStats) Execute(
	ctx context.Context,
	date string,
) (*dto.DashboardStatsDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	customers := make(map[string]struct{})
	revenue := 0.0
	durationSum := 0
	durationCount := 0

	for _, ap := range appointments {
		customers[ap.CustomerID] = struct{}{}

		service, ok := byID[ap.ServiceID]
		if !ok {
			continue
		}

		durationSum += service.DurationMin
		durationCount++

		if ap.Status == string(domain.StatusCompleted) {
			revenue += service.Price
		}
	}

	avg := 0
	if durationCount > 0 {
		avg = durationSum / durationCount
	}

	return &dto.DashboardStatsDTO{
		Date:             date,
		Appointments:     len(appointments),
		ActiveCustomers:  len(customers),
		CompletedRevenue: revenue,
		AvgDurationMin:   avg,
	}, nil
}
