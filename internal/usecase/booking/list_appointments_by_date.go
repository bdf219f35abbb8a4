package booking

import (
	"context"

	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/dto"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	serviceNames, barberNames, err := uc.catalogNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			Date:          ap.Date,
			Time:          ap.Time,
			Status:        ap.Status,
			ReminderSent:  ap.ReminderSent,
			CustomerName:  ap.CustomerName,
			CustomerPhone: ap.CustomerPhone,
			ServiceName:   serviceNames[ap.ServiceID],
			BarberName:    barberNames[ap.BarberID],
		})
	}

	return out, nil
}

func (uc *ListAppointmentsByDate) catalogNames(
	ctx context.Context,
) (map[string]string, map[string]string, error) {

	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, nil, err
	}

	barbers, err := uc.repo.ListBarbers(ctx)
	if err != nil {
		return nil, nil, err
	}

	serviceNames := make(map[string]string, len(services))
	for _, s := range services {
		serviceNames[s.ID] = s.Name
	}

	barberNames := make(map[string]string, len(barbers))
	for _, b := range barbers {
		barberNames[b.ID] = b.Name
	}

	return serviceNames, barberNames, nil
}
