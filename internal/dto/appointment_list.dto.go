package dto

type AppointmentListDTO struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	ReminderSent  bool   `json:"reminder_sent"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	ServiceName   string `json:"service_name"`
	BarberName    string `json:"barber_name"`
}

type DashboardStatsDTO struct {
	Date             string  `json:"date"`
	Appointments     int     `json:"appointments"`
	ActiveCustomers  int     `json:"active_customers"`
	CompletedRevenue float64 `json:"completed_revenue"`
	AvgDurationMin   int     `json:"avg_duration_min"`
}
