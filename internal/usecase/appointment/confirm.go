package appointment

import (
	"context"

	"github.com/tiadeasalon/salon-manager/internal/audit"
	domain "github.com/tiadeasalon/salon-manager/internal/domain/appointment"
	"github.com/tiadeasalon/salon-manager/internal/models"
	"github.com/tiadeasalon/salon-manager/internal/timezone"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute confirma um atendimento realizado. Com valor já gravado o
// agendamento conclui direto; sem valor, o chamador precisa informar um
// na própria confirmação (a tela abre o sub-formulário para isso).
func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	id uint,
	serviceValue *float64,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := domain.Complete(ap, serviceValue, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"service_value": ap.ServiceValue},
	})

	return ap, nil
}
