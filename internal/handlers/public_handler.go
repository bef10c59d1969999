package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tiadeasalon/salon-manager/internal/audit"
	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/httpresp"
	"github.com/tiadeasalon/salon-manager/internal/infra/repository"
	"github.com/tiadeasalon/salon-manager/internal/models"
	"github.com/tiadeasalon/salon-manager/internal/storage"
	"github.com/tiadeasalon/salon-manager/internal/whatsapp"
)

// PublicHandler atende a vitrine: informações do salão e o formulário de
// agendamento, sem autenticação.
type PublicHandler struct {
	clients *repository.ClientGormRepository
	cfgs    *repository.ConfigGormRepository
	gallery *storage.GalleryStore
	audit   *audit.Dispatcher
}

func NewPublicHandler(
	clients *repository.ClientGormRepository,
	cfgs *repository.ConfigGormRepository,
	gallery *storage.GalleryStore,
	auditDispatcher *audit.Dispatcher,
) *PublicHandler {
	return &PublicHandler{
		clients: clients,
		cfgs:    cfgs,
		gallery: gallery,
		audit:   auditDispatcher,
	}
}

// --------- Requests ---------

type BookingRequest struct {
	ResponsibleName string `json:"responsible_name" binding:"required"`
	ChildName       string `json:"child_name" binding:"required"`
	Address         string `json:"address" binding:"required"`
	Birthdate       string `json:"birthdate" binding:"required"`
	Phone           string `json:"phone"`
}

// --------- Handlers ---------

// Info devolve os dados exibidos na página inicial: configuração do
// salão (sem campos sensíveis, o hash da senha nunca serializa) e as
// fotos da galeria. Falha na galeria não derruba a página.
func (h *PublicHandler) Info(c *gin.Context) {
	ctx := c.Request.Context()

	salon := h.cfgs.Load(ctx)

	gallery, err := h.gallery.List(ctx)
	if err != nil {
		log.Println("public gallery list failed:", err)
		gallery = []string{}
	}

	httpresp.OK(c, gin.H{
		"salon":   salon,
		"gallery": gallery,
	})
}

// Booking recebe o formulário público, cadastra o cliente e devolve o
// deep link do WhatsApp com a mensagem pré-preenchida. O link é o
// resultado principal: se o cadastro falhar, a resposta ainda traz o
// link, com o aviso de que o registro não foi salvo.
func (h *PublicHandler) Booking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha responsável, criança, endereço e data de nascimento.")
		return
	}

	if _, err := parseDate(req.Birthdate); err != nil {
		httperr.BadRequest(c, "invalid_birthdate", "Data de nascimento inválida. Use o formato AAAA-MM-DD.")
		return
	}

	ctx := c.Request.Context()

	// Mesmo com o banco fora do ar o link precisa nascer: a configuração
	// cai nos padrões dentro do Load.
	salon := h.cfgs.Load(ctx)

	message := whatsapp.BookingMessage(
		salon.StylistName,
		req.ResponsibleName,
		req.ChildName,
		req.Address,
		req.Birthdate,
	)
	link := whatsapp.Link(salon.WhatsAppNumber, message)

	client := models.Client{
		ChildName:       req.ChildName,
		ResponsibleName: req.ResponsibleName,
		Address:         req.Address,
		Birthdate:       req.Birthdate,
		Phone:           req.Phone,
		ServiceType:     "Salão",
	}

	saved := true
	if err := h.clients.Create(ctx, &client); err != nil {
		log.Println("public booking client create failed:", err)
		saved = false
	} else {
		h.audit.Dispatch(audit.Event{
			Action:   "public_booking_received",
			Entity:   "client",
			EntityID: &client.ID,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"whatsapp_link": link,
		"client_saved":  saved,
	})
}
