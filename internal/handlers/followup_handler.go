package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tiadeasalon/salon-manager/internal/audit"
	"github.com/tiadeasalon/salon-manager/internal/cache"
	"github.com/tiadeasalon/salon-manager/internal/domain/followup"
	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/httpresp"
	"github.com/tiadeasalon/salon-manager/internal/infra/repository"
	"github.com/tiadeasalon/salon-manager/internal/timezone"
	"github.com/tiadeasalon/salon-manager/internal/whatsapp"
)

type FollowupHandler struct {
	clients      *repository.ClientGormRepository
	appointments *repository.AppointmentGormRepository
	cfgs         *repository.ConfigGormRepository
	cache        *cache.Store
	audit        *audit.Dispatcher
}

func NewFollowupHandler(
	clients *repository.ClientGormRepository,
	appointments *repository.AppointmentGormRepository,
	cfgs *repository.ConfigGormRepository,
	cacheStore *cache.Store,
	auditDispatcher *audit.Dispatcher,
) *FollowupHandler {
	return &FollowupHandler{
		clients:      clients,
		appointments: appointments,
		cfgs:         cfgs,
		cache:        cacheStore,
		audit:        auditDispatcher,
	}
}

// --------- Requests ---------

type FollowupConfigRequest struct {
	Days    int    `json:"days" binding:"required"`
	Message string `json:"message"`
}

// --------- Handlers ---------

// List devolve a visão de retorno de cada cliente, classificada pelo
// limiar configurado. O filtro aceita all, overdue e upcoming; clientes
// com lembrete enviado hoje aparecem com a urgência "reminded".
func (h *FollowupHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := c.DefaultQuery("filter", "all")
	if filter != "all" && filter != "overdue" && filter != "upcoming" {
		httperr.BadRequest(c, "invalid_filter", "Filtro deve ser all, overdue ou upcoming.")
		return
	}

	clients, err := h.clients.List(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao buscar clientes.")
		return
	}

	appointments, err := h.appointments.ListAppointments(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
		return
	}

	salon := h.cfgs.Load(ctx)

	now := timezone.Now()
	summaries := followup.Classify(clients, appointments, salon.FollowupDays, now)

	out := summaries[:0:0]
	for _, s := range summaries {
		if h.cache.ReminderSentToday(ctx, s.Client.ID, now) {
			s.Urgency = followup.UrgencyReminded
		}

		switch filter {
		case "overdue":
			if !s.IsOverdue {
				continue
			}
		case "upcoming":
			if !s.IsUpcoming {
				continue
			}
		}
		out = append(out, s)
	}

	httpresp.List(c, out)
}

func (h *FollowupHandler) GetConfig(c *gin.Context) {
	salon := h.cfgs.Load(c.Request.Context())

	httpresp.OK(c, gin.H{
		"days":    salon.FollowupDays,
		"message": salon.FollowupMessage,
	})
}

// UpdateConfig grava o limiar de retorno e o template da mensagem. O
// template usa os marcadores {cliente} e {pronome}.
func (h *FollowupHandler) UpdateConfig(c *gin.Context) {
	var req FollowupConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o número de dias.")
		return
	}

	if req.Days < followup.MinDays || req.Days > followup.MaxDays {
		httperr.BadRequest(c, "invalid_followup_days", "O período de retorno deve ficar entre 1 e 365 dias.")
		return
	}

	updates := map[string]string{
		repository.KeyFollowupDays: strconv.Itoa(req.Days),
	}
	if req.Message != "" {
		updates[repository.KeyFollowupMessage] = req.Message
	}

	if err := h.cfgs.Save(c.Request.Context(), updates); err != nil {
		httperr.Internal(c, "failed_to_save_config", "Erro ao salvar configuração.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "followup_config_updated",
		Entity:   "config",
		Metadata: map[string]any{"days": req.Days},
	})

	httpresp.OK(c, gin.H{"days": req.Days})
}

// SendReminder monta o link do WhatsApp com a mensagem de retorno do
// cliente e marca o lembrete como enviado hoje. O envio em si acontece no
// aparelho da administradora; aqui só nasce o deep link.
func (h *FollowupHandler) SendReminder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
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

	if client.Phone == "" {
		httperr.BadRequest(c, "client_without_phone", "Cliente sem telefone cadastrado.")
		return
	}

	salon := h.cfgs.Load(ctx)

	message := whatsapp.RenderFollowup(
		salon.FollowupMessage,
		client.ResponsibleName,
		client.ChildName,
	)
	link := whatsapp.Link(client.Phone, message)

	now := timezone.Now()
	if err := h.cache.MarkReminderSent(ctx, client.ID, now); err != nil {
		log.Println("reminder flag save failed:", err)
	}

	h.audit.Dispatch(audit.Event{
		Action:   "followup_reminder_sent",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, gin.H{
		"whatsapp_link": link,
		"message":       message,
	})
}

// Birthdays lista os aniversariantes do dia. A flag diária indica se a
// conferência de hoje já tinha sido feita, para a tela não repetir o
// aviso.
func (h *FollowupHandler) Birthdays(c *gin.Context) {
	ctx := c.Request.Context()

	clients, err := h.clients.List(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao buscar clientes.")
		return
	}

	now := timezone.Now()
	birthdays := followup.BirthdayClients(clients, now)

	alreadyChecked := h.cache.BirthdayCheckedToday(ctx, now)
	if !alreadyChecked {
		if err := h.cache.MarkBirthdayChecked(ctx, now); err != nil {
			log.Println("birthday flag save failed:", err)
		}
	}

	httpresp.OK(c, gin.H{
		"clients":         birthdays,
		"already_checked": alreadyChecked,
	})
}
