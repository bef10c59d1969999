package appointment

import (
	"context"

	"github.com/tiadeasalon/salon-manager/internal/audit"
	domain "github.com/tiadeasalon/salon-manager/internal/domain/appointment"
	"github.com/tiadeasalon/salon-manager/internal/models"
	"github.com/tiadeasalon/salon-manager/internal/timezone"
)

type SetAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute aplica um status escolhido explicitamente na interface
// (pendente, confirmado, perdido, cancelado ou concluído).
func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	id uint,
	status domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.SetStatus(ap, status, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	return ap, nil
}
