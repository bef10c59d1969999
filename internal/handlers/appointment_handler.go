package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tiadeasalon/salon-manager/internal/audit"
	"github.com/tiadeasalon/salon-manager/internal/cache"
	domain "github.com/tiadeasalon/salon-manager/internal/domain/appointment"
	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/httpresp"
	"github.com/tiadeasalon/salon-manager/internal/infra/repository"
	usecase "github.com/tiadeasalon/salon-manager/internal/usecase/appointment"
)

type AppointmentHandler struct {
	repo  *repository.AppointmentGormRepository
	cache *cache.Store
	audit *audit.Dispatcher

	createUC *usecase.CreateAppointment
	confirm  *usecase.ConfirmAppointment
	status   *usecase.SetAppointmentStatus
}

func NewAppointmentHandler(
	repo *repository.AppointmentGormRepository,
	cacheStore *cache.Store,
	auditDispatcher *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		cache:    cacheStore,
		audit:    auditDispatcher,
		createUC: usecase.NewCreateAppointment(repo, auditDispatcher),
		confirm:  usecase.NewConfirmAppointment(repo, auditDispatcher),
		status:   usecase.NewSetAppointmentStatus(repo, auditDispatcher),
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientName   string   `json:"client_name" binding:"required"`
	Date         string   `json:"date" binding:"required"`
	Time         string   `json:"time" binding:"required"`
	Location     string   `json:"location"`
	Notes        string   `json:"notes"`
	ServiceValue *float64 `json:"service_value"`
}

type UpdateAppointmentRequest struct {
	Date         string   `json:"date" binding:"required"`
	Time         string   `json:"time" binding:"required"`
	Location     string   `json:"location"`
	Notes        string   `json:"notes"`
	ServiceValue *float64 `json:"service_value"`
}

type ConfirmAppointmentRequest struct {
	ServiceValue *float64 `json:"service_value"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

// List devolve os agendamentos, com filtros opcionais por status e local
// via query string. Como na lista de clientes, o resultado completo vira
// snapshot no redis e serve de fallback quando o banco falha.
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	apps, err := h.repo.ListAppointments(ctx)
	if err != nil {
		log.Println("appointment list fallback to cache:", err)

		cached, cacheErr := h.cache.LoadAppointments(ctx)
		if cacheErr != nil {
			httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
			return
		}
		apps = cached
	} else if err := h.cache.SaveAppointments(ctx, apps); err != nil {
		log.Println("appointment snapshot save failed:", err)
	}

	status := c.Query("status")
	location := c.Query("location")
	if status != "" || location != "" {
		filtered := apps[:0:0]
		for _, ap := range apps {
			if status != "" && ap.Status != status {
				continue
			}
			if location != "" && ap.Location != location {
				continue
			}
			filtered = append(filtered, ap)
		}
		apps = filtered
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

// Create agenda um novo atendimento. O rótulo digitado precisa resolver
// para um cliente cadastrado e o horário segue a grade de meia em meia
// hora da tela de agendamento.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe cliente, data e horário.")
		return
	}

	if _, err := parseDate(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
		return
	}
	if !isHalfHourSlot(req.Time) {
		httperr.BadRequest(c, "invalid_time_slot", "Horário inválido. Escolha um horário de meia em meia hora.")
		return
	}
	if req.Location != "" && req.Location != "Salão" && req.Location != "Domicílio" {
		httperr.BadRequest(c, "invalid_location", "Local deve ser Salão ou Domicílio.")
		return
	}

	location := req.Location
	if location == "" {
		location = "Salão"
	}

	ap, err := h.createUC.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		ClientLabel:  req.ClientName,
		Date:         req.Date,
		Time:         req.Time,
		Location:     location,
		Notes:        req.Notes,
		ServiceValue: req.ServiceValue,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.BadRequest(c, "client_not_found", "Cliente não encontrado. Cadastre o cliente antes de agendar.")
		case httperr.IsBusiness(err, "invalid_service_value"):
			httperr.BadRequest(c, "invalid_service_value", "O valor do serviço deve ser maior que zero.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// Update edita data, horário, local, observações e valor. Diferente da
// criação, a edição aceita qualquer horário válido HH:MM.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe data e horário.")
		return
	}

	if _, err := parseDate(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
		return
	}
	if !isValidTime(req.Time) {
		httperr.BadRequest(c, "invalid_time", "Horário inválido. Use o formato HH:MM.")
		return
	}
	if req.Location != "" && req.Location != "Salão" && req.Location != "Domicílio" {
		httperr.BadRequest(c, "invalid_location", "Local deve ser Salão ou Domicílio.")
		return
	}
	if req.ServiceValue != nil && *req.ServiceValue <= 0 {
		httperr.BadRequest(c, "invalid_service_value", "O valor do serviço deve ser maior que zero.")
		return
	}

	ctx := c.Request.Context()

	ap, err := h.repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	ap.Date = req.Date
	ap.Time = req.Time
	if req.Location != "" {
		ap.Location = req.Location
	}
	ap.Notes = req.Notes
	if req.ServiceValue != nil {
		ap.ServiceValue = req.ServiceValue
	}

	if err := h.repo.UpdateAppointment(ctx, ap); err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.OK(c, ap)
}

// Confirm conclui um atendimento realizado. Sem valor gravado, o valor
// precisa vir no corpo da requisição.
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ConfirmAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), id, req.ServiceValue)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "missing_service_value"):
			httperr.BadRequest(c, "missing_service_value", "Informe o valor do serviço para concluir o atendimento.")
		default:
			httperr.Internal(c, "failed_to_confirm_appointment", "Erro ao concluir atendimento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// SetStatus aplica um status escolhido na interface (pendente,
// confirmado, perdido, cancelado ou concluído).
func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o status.")
		return
	}

	ap, err := h.status.Execute(c.Request.Context(), id, domain.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
		case httperr.IsBusiness(err, "missing_service_value"):
			httperr.BadRequest(c, "missing_service_value", "Informe o valor do serviço para concluir o atendimento.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteAppointment(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}
