package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tiadeasalon/salon-manager/internal/audit"
	"github.com/tiadeasalon/salon-manager/internal/domain/finance"
	"github.com/tiadeasalon/salon-manager/internal/export"
	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/httpresp"
	"github.com/tiadeasalon/salon-manager/internal/infra/repository"
	"github.com/tiadeasalon/salon-manager/internal/models"
	"github.com/tiadeasalon/salon-manager/internal/timezone"
)

type FinancialHandler struct {
	records      *repository.FinancialGormRepository
	appointments *repository.AppointmentGormRepository
	audit        *audit.Dispatcher
}

func NewFinancialHandler(
	records *repository.FinancialGormRepository,
	appointments *repository.AppointmentGormRepository,
	auditDispatcher *audit.Dispatcher,
) *FinancialHandler {
	return &FinancialHandler{
		records:      records,
		appointments: appointments,
		audit:        auditDispatcher,
	}
}

// --------- Requests ---------

type CreateFinancialRecordRequest struct {
	Date          string  `json:"date" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Description   string  `json:"description"`
	AppointmentID *uint   `json:"appointment_id"`
}

// --------- Handlers ---------

// List devolve os lançamentos manuais, do mês informado em year/month ou
// todos quando o período não vier na query.
func (h *FinancialHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	year, month, ok, err := periodQuery(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_period", "Período inválido. Informe year e month numéricos.")
		return
	}

	var records []models.FinancialRecord
	if ok {
		records, err = h.records.ListByMonth(ctx, year, month)
	} else {
		records, err = h.records.List(ctx)
	}
	if err != nil {
		httperr.Internal(c, "failed_to_list_records", "Erro ao buscar lançamentos.")
		return
	}

	httpresp.List(c, records)
}

func (h *FinancialHandler) Create(c *gin.Context) {
	var req CreateFinancialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe data e valor do lançamento.")
		return
	}

	if _, err := parseDate(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
		return
	}
	if req.Amount <= 0 {
		httperr.BadRequest(c, "invalid_amount", "O valor deve ser maior que zero.")
		return
	}

	record := models.FinancialRecord{
		Date:          req.Date,
		Amount:        req.Amount,
		Description:   req.Description,
		AppointmentID: req.AppointmentID,
	}

	if err := h.records.Create(c.Request.Context(), &record); err != nil {
		httperr.Internal(c, "failed_to_create_record", "Erro ao criar lançamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "financial_record_created",
		Entity:   "financial_record",
		EntityID: &record.ID,
		Metadata: map[string]any{"amount": record.Amount},
	})

	c.JSON(http.StatusCreated, record)
}

func (h *FinancialHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.records.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_record", "Erro ao excluir lançamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "financial_record_deleted",
		Entity:   "financial_record",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}

// Summary agrega a receita do mês: lançamentos manuais mais valores de
// serviço de agendamentos concluídos, com filtro opcional por local.
func (h *FinancialHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	year, month, ok, err := periodQuery(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_period", "Período inválido. Informe year e month numéricos.")
		return
	}
	if !ok {
		now := timezone.Now()
		year, month = now.Year(), now.Month()
	}

	location := c.Query("location")
	if location != "" && location != "Salão" && location != "Domicílio" {
		httperr.BadRequest(c, "invalid_location", "Local deve ser Salão ou Domicílio.")
		return
	}

	records, err := h.records.ListByMonth(ctx, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_records", "Erro ao buscar lançamentos.")
		return
	}

	appointments, err := h.monthAppointments(c, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
		return
	}

	httpresp.OK(c, finance.Monthly(records, appointments, year, month, location))
}

// ExportCSV baixa o extrato do mês como arquivo CSV, com o mesmo filtro
// opcional de local da tela de resumo.
func (h *FinancialHandler) ExportCSV(c *gin.Context) {
	ctx := c.Request.Context()

	year, month, ok, err := periodQuery(c)
	if err != nil || !ok {
		httperr.BadRequest(c, "invalid_period", "Período inválido. Informe year e month numéricos.")
		return
	}

	location := c.Query("location")
	if location != "" && location != "Salão" && location != "Domicílio" {
		httperr.BadRequest(c, "invalid_location", "Local deve ser Salão ou Domicílio.")
		return
	}

	records, err := h.records.ListByMonth(ctx, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_records", "Erro ao buscar lançamentos.")
		return
	}

	appointments, err := h.monthAppointments(c, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
		return
	}

	out, err := export.FinancialCSV(records, appointments, location)
	if err != nil {
		httperr.Internal(c, "failed_to_export", "Erro ao gerar o extrato.")
		return
	}

	filename := fmt.Sprintf("financeiro-%04d-%02d.csv", year, int(month))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}

// --------- Helpers ---------

func (h *FinancialHandler) monthAppointments(
	c *gin.Context,
	year int,
	month time.Month,
) ([]models.Appointment, error) {

	start := fmt.Sprintf("%04d-%02d-01", year, int(month))
	end := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, 0).
		Format("2006-01-02")

	return h.appointments.ListAppointmentsForPeriod(c.Request.Context(), start, end)
}

// periodQuery lê year e month da query string. ok=false quando nenhum
// dos dois foi informado.
func periodQuery(c *gin.Context) (int, time.Month, bool, error) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" && monthStr == "" {
		return 0, 0, false, nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, false, err
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false, fmt.Errorf("invalid month: %q", monthStr)
	}

	return year, time.Month(month), true, nil
}
