package booking

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/elite-booking/internal/audit"
	"github.com/BruksfildServices01/elite-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/elite-booking/internal/db"
	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/infra/repository"
	"github.com/BruksfildServices01/elite-booking/internal/models"
)

// ======================================================
// TEST FIXTURES
// ======================================================

type sentMessage struct {
	Phone   string
	Message string
}

// fakeSender grava toda tentativa de envio; telefones em failPhones
// simulam falha de entrega
type fakeSender struct {
	mu         sync.Mutex
	sent       []sentMessage
	failPhones map[string]bool
}

func newFakeSender() *fakeSender {
	return &fakeSender{failPhones: map[string]bool{}}
}

func (s *fakeSender) Send(_ context.Context, phone, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sent = append(s.sent, sentMessage{Phone: phone, Message: message})
	return !s.failPhones[phone]
}

func (s *fakeSender) messagesTo(phone string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for _, m := range s.sent {
		if m.Phone == phone {
			out = append(out, m.Message)
		}
	}
	return out
}

func (s *fakeSender) deliveries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type testEnv struct {
	db     *gorm.DB
	repo   domain.Repository
	sender *fakeSender
	audit  *audit.Dispatcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := dbpkg.NewDB(&config.Config{DBUrl: ":memory:"})

	return &testEnv{
		db:     db,
		repo:   repository.NewBookingGormRepository(db),
		sender: newFakeSender(),
		audit:  audit.NewDispatcher(audit.New(db)),
	}
}

// catálogo mínimo + um slot livre em 2024-01-10 10:00 com o Mike
func (e *testEnv) seedCatalog(t *testing.T) {
	t.Helper()

	require.NoError(t, e.db.Create(&models.Service{
		ID: "haircut", Name: "Classic Haircut", DurationMin: 45, Price: 35, Active: true,
	}).Error)
	require.NoError(t, e.db.Create(&models.Barber{
		ID: "mike", Name: "Mike Johnson", Specialties: "Classic Cuts",
	}).Error)
	require.NoError(t, e.db.Create(&models.Barber{
		ID: "carlos", Name: "Carlos Rodriguez", Specialties: "Modern Styles",
	}).Error)

	e.seedSlot(t, "2024-01-10", "10:00", "mike")
}

func (e *testEnv) seedSlot(t *testing.T, date, timeOfDay, barberID string) string {
	t.Helper()

	id := domain.SlotID(date, timeOfDay, barberID)
	require.NoError(t, e.db.Create(&models.TimeSlot{
		ID:       id,
		Date:     date,
		Time:     timeOfDay,
		BarberID: barberID,
	}).Error)
	return id
}

func (e *testEnv) slot(t *testing.T, slotID string) *models.TimeSlot {
	t.Helper()

	var slot models.TimeSlot
	require.NoError(t, e.db.Where("id = ?", slotID).First(&slot).Error)
	return &slot
}

func (e *testEnv) appointment(t *testing.T, id string) *models.Appointment {
	t.Helper()

	var ap models.Appointment
	require.NoError(t, e.db.Where("id = ?", id).First(&ap).Error)
	return &ap
}

func containsAll(message string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(message, p) {
			return false
		}
	}
	return true
}
