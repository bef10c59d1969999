package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tiadeasalon/salon-manager/internal/audit"
	"github.com/tiadeasalon/salon-manager/internal/cache"
	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/httpresp"
	"github.com/tiadeasalon/salon-manager/internal/infra/repository"
	"github.com/tiadeasalon/salon-manager/internal/models"
	"github.com/tiadeasalon/salon-manager/internal/validators"
)

type ClientHandler struct {
	clients *repository.ClientGormRepository
	cache   *cache.Store
	audit   *audit.Dispatcher
}

func NewClientHandler(
	clients *repository.ClientGormRepository,
	cacheStore *cache.Store,
	auditDispatcher *audit.Dispatcher,
) *ClientHandler {
	return &ClientHandler{
		clients: clients,
		cache:   cacheStore,
		audit:   auditDispatcher,
	}
}

// --------- Requests ---------

type ClientRequest struct {
	ChildName       string `json:"child_name" binding:"required"`
	ResponsibleName string `json:"responsible_name" binding:"required"`
	Address         string `json:"address" binding:"required"`
	Birthdate       string `json:"birthdate" binding:"required"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Notes           string `json:"notes"`
	ServiceCount    *int   `json:"service_count"`
	ServiceType     string `json:"service_type"`
}

func (req *ClientRequest) validate(c *gin.Context) bool {
	if _, err := parseDate(req.Birthdate); err != nil {
		httperr.BadRequest(c, "invalid_birthdate", "Data de nascimento inválida. Use o formato AAAA-MM-DD.")
		return false
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não existe.")
		return false
	}

	if req.ServiceType != "" && req.ServiceType != "Salão" && req.ServiceType != "Domicílio" {
		httperr.BadRequest(c, "invalid_service_type", "Tipo de atendimento deve ser Salão ou Domicílio.")
		return false
	}

	if req.ServiceCount != nil && *req.ServiceCount < 0 {
		httperr.BadRequest(c, "invalid_service_count", "O contador de serviços não pode ser negativo.")
		return false
	}

	return true
}

func (req *ClientRequest) apply(client *models.Client) {
	client.ChildName = req.ChildName
	client.ResponsibleName = req.ResponsibleName
	client.Address = req.Address
	client.Birthdate = req.Birthdate
	client.Phone = req.Phone
	client.Email = req.Email
	client.Notes = req.Notes
	if req.ServiceCount != nil {
		client.ServiceCount = *req.ServiceCount
	}
	if req.ServiceType != "" {
		client.ServiceType = req.ServiceType
	}
}

// --------- Handlers ---------

// List devolve todos os clientes. Depois de cada leitura bem-sucedida o
// resultado vira snapshot no redis; se o banco falhar, o snapshot é
// servido como último valor conhecido.
func (h *ClientHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	clients, err := h.clients.List(ctx)
	if err != nil {
		log.Println("client list fallback to cache:", err)

		cached, cacheErr := h.cache.LoadClients(ctx)
		if cacheErr != nil {
			httperr.Internal(c, "failed_to_list_clients", "Erro ao buscar clientes.")
			return
		}
		httpresp.List(c, cached)
		return
	}

	if err := h.cache.SaveClients(ctx, clients); err != nil {
		log.Println("client snapshot save failed:", err)
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.clients.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha criança, responsável, endereço e data de nascimento.")
		return
	}
	if !req.validate(c) {
		return
	}

	client := models.Client{ServiceType: "Salão"}
	req.apply(&client)

	if err := h.clients.Create(c.Request.Context(), &client); err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao cadastrar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha criança, responsável, endereço e data de nascimento.")
		return
	}
	if !req.validate(c) {
		return
	}

	ctx := c.Request.Context()

	client, err := h.clients.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}

	req.apply(client)

	if err := h.clients.Update(ctx, client); err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}

// --------- Helpers ---------

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
