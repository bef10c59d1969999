package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/models"
)

// ==========================
// Fake repository
// ==========================

type fakeRepo struct {
	clients      []models.Client
	appointments map[uint]*models.Appointment
	nextID       uint
	listErr      error
}

func newFakeRepo(clients ...models.Client) *fakeRepo {
	return &fakeRepo{
		clients:      clients,
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
	}
}

func (f *fakeRepo) ListClients(ctx context.Context) ([]models.Client, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.clients, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = f.nextID
	f.nextID++
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(
	ctx context.Context,
	start, end string,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Date >= start && ap.Date < end {
			out = append(out, *ap)
		}
	}
	return out, nil
}

// ==========================
// Create
// ==========================

func TestCreate_ResolvesAndLinksClient(t *testing.T) {
	repo := newFakeRepo(models.Client{ID: 3, ChildName: "Ana", ResponsibleName: "Maria"})
	uc := NewCreateAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientLabel: "Ana - Maria",
		Date:        "2026-09-01",
		Time:        "14:30",
		Location:    "Domicílio",
	})

	require.NoError(t, err)
	require.NotNil(t, ap.ClientID)
	assert.Equal(t, uint(3), *ap.ClientID)
	assert.Equal(t, "Ana (Maria)", ap.ClientName, "rótulo é normalizado para o formato combinado")
	assert.Equal(t, "pending", ap.Status)
}

func TestCreate_UnknownClientIsRejected(t *testing.T) {
	repo := newFakeRepo(models.Client{ID: 1, ChildName: "Ana", ResponsibleName: "Maria"})
	uc := NewCreateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientLabel: "Zeca",
		Date:        "2026-09-01",
		Time:        "14:00",
	})

	assert.True(t, httperr.IsBusiness(err, "client_not_found"))
	assert.Empty(t, repo.appointments)
}

func TestCreate_NegativeValueIsRejected(t *testing.T) {
	repo := newFakeRepo(models.Client{ID: 1, ChildName: "Ana", ResponsibleName: "Maria"})
	uc := NewCreateAppointment(repo, nil)

	bad := -10.0
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientLabel:  "Ana",
		Date:         "2026-09-01",
		Time:         "14:00",
		ServiceValue: &bad,
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_service_value"))
}

// ==========================
// Confirm
// ==========================

func TestConfirm_WithStoredValueCompletesDirectly(t *testing.T) {
	repo := newFakeRepo()
	v := 80.0
	repo.appointments[1] = &models.Appointment{ID: 1, Status: "pending", ServiceValue: &v}
	repo.nextID = 2

	uc := NewConfirmAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)
	assert.NotNil(t, ap.CompletedAt)
}

func TestConfirm_WithoutValueRequiresOne(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{ID: 1, Status: "pending"}
	repo.nextID = 2

	uc := NewConfirmAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), 1, nil)
	assert.True(t, httperr.IsBusiness(err, "missing_service_value"))

	v := 120.0
	ap, err := uc.Execute(context.Background(), 1, &v)
	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)
	assert.Equal(t, 120.0, *ap.ServiceValue)
}
