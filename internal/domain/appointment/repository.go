package appointment

import (
	"context"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

type Repository interface {
	// -------- Client --------
	ListClients(ctx context.Context) ([]models.Client, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	DeleteAppointment(ctx context.Context, id uint) error

	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start string,
		end string,
	) ([]models.Appointment, error)
}
