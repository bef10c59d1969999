package appointment

import (
	"context"

	"github.com/tiadeasalon/salon-manager/internal/audit"
	domain "github.com/tiadeasalon/salon-manager/internal/domain/appointment"
	"github.com/tiadeasalon/salon-manager/internal/domain/followup"
	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/models"
)

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

type CreateAppointmentInput struct {
	ClientLabel  string
	Date         string
	Time         string
	Location     string
	Notes        string
	ServiceValue *float64
}

// Execute resolve o rótulo digitado para um cliente cadastrado e cria o
// agendamento já vinculado por id, com o rótulo normalizado no formato
// "Criança (Responsável)". Rótulo sem cliente correspondente barra a
// criação: é preciso cadastrar o cliente antes.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	clients, err := uc.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	client := followup.ResolveClient(in.ClientLabel, clients)
	if client == nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	if in.ServiceValue != nil && *in.ServiceValue <= 0 {
		return nil, httperr.ErrBusiness("invalid_service_value")
	}

	clientID := client.ID
	ap := &models.Appointment{
		ClientID:     &clientID,
		ClientName:   followup.Labels(client)[0],
		Date:         in.Date,
		Time:         in.Time,
		Location:     in.Location,
		Status:       string(domain.InitialStatus()),
		Notes:        in.Notes,
		ServiceValue: in.ServiceValue,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
