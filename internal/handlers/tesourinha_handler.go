package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tiadeasalon/salon-manager/internal/audit"
	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/httpresp"
	"github.com/tiadeasalon/salon-manager/internal/infra/repository"
	"github.com/tiadeasalon/salon-manager/internal/models"
)

type TesourinhaHandler struct {
	entries *repository.TesourinhaGormRepository
	audit   *audit.Dispatcher
}

func NewTesourinhaHandler(
	entries *repository.TesourinhaGormRepository,
	auditDispatcher *audit.Dispatcher,
) *TesourinhaHandler {
	return &TesourinhaHandler{
		entries: entries,
		audit:   auditDispatcher,
	}
}

// --------- Requests ---------

type CreateTesourinhaRequest struct {
	Date string `json:"date" binding:"required"`
	Note string `json:"note" binding:"required"`
}

// MonthGroup agrupa as anotações de um mês na listagem.
type MonthGroup struct {
	Month   string                   `json:"month"`
	Entries []models.TesourinhaEntry `json:"entries"`
}

// --------- Handlers ---------

// List devolve o diário agrupado por mês (AAAA-MM), do mais recente para
// o mais antigo. A ordenação do repositório já vem decrescente, então a
// ordem dos grupos segue a ordem de chegada.
func (h *TesourinhaHandler) List(c *gin.Context) {
	entries, err := h.entries.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_entries", "Erro ao buscar o diário.")
		return
	}

	var groups []MonthGroup
	index := map[string]int{}

	for _, e := range entries {
		month := e.Date
		if len(month) >= 7 {
			month = month[:7]
		}

		i, ok := index[month]
		if !ok {
			i = len(groups)
			index[month] = i
			groups = append(groups, MonthGroup{Month: month})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}

	httpresp.List(c, groups)
}

func (h *TesourinhaHandler) Create(c *gin.Context) {
	var req CreateTesourinhaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe data e anotação.")
		return
	}

	if _, err := parseDate(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
		return
	}

	entry := models.TesourinhaEntry{
		Date: req.Date,
		Note: req.Note,
	}

	if err := h.entries.Create(c.Request.Context(), &entry); err != nil {
		httperr.Internal(c, "failed_to_create_entry", "Erro ao criar anotação.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "tesourinha_entry_created",
		Entity:   "tesourinha_entry",
		EntityID: &entry.ID,
	})

	c.JSON(http.StatusCreated, entry)
}

func (h *TesourinhaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.entries.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_entry", "Erro ao excluir anotação.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "tesourinha_entry_deleted",
		Entity:   "tesourinha_entry",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}
