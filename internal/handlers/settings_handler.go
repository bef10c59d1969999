package handlers

import (
	"io"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/tiadeasalon/salon-manager/internal/audit"
	"github.com/tiadeasalon/salon-manager/internal/domain/followup"
	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/httpresp"
	"github.com/tiadeasalon/salon-manager/internal/infra/repository"
	"github.com/tiadeasalon/salon-manager/internal/storage"
)

// Limite de upload da galeria, antes da reencodificação
const maxUploadBytes = 10 << 20

type SettingsHandler struct {
	cfgs    *repository.ConfigGormRepository
	gallery *storage.GalleryStore
	audit   *audit.Dispatcher
}

func NewSettingsHandler(
	cfgs *repository.ConfigGormRepository,
	gallery *storage.GalleryStore,
	auditDispatcher *audit.Dispatcher,
) *SettingsHandler {
	return &SettingsHandler{
		cfgs:    cfgs,
		gallery: gallery,
		audit:   auditDispatcher,
	}
}

// --------- Requests ---------

// UpdateSettingsRequest é um merge-patch: só os campos presentes são
// gravados. Ponteiros distinguem ausente de vazio.
type UpdateSettingsRequest struct {
	StylistName        *string `json:"stylist_name"`
	ServiceDescription *string `json:"service_description"`
	SalonAddress       *string `json:"salon_address"`
	WhatsAppNumber     *string `json:"whatsapp_number"`
	InstagramURL       *string `json:"instagram_url"`
	HomeServiceDays    *[]int  `json:"home_service_days"`
	FollowupDays       *int    `json:"followup_days"`
	FollowupMessage    *string `json:"followup_message"`
	AdminPassword      *string `json:"admin_password"`
}

type DeleteImageRequest struct {
	URL string `json:"url" binding:"required"`
}

// --------- Configuração ---------

func (h *SettingsHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.cfgs.Load(c.Request.Context()))
}

// Update aplica o merge-patch sobre a tabela de configuração. A troca de
// senha recebe o texto puro e grava só o hash.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	updates := map[string]string{}

	if req.StylistName != nil {
		updates[repository.KeyStylistName] = *req.StylistName
	}
	if req.ServiceDescription != nil {
		updates[repository.KeyServiceDescription] = *req.ServiceDescription
	}
	if req.SalonAddress != nil {
		updates[repository.KeySalonAddress] = *req.SalonAddress
	}
	if req.WhatsAppNumber != nil {
		updates[repository.KeyWhatsAppNumber] = *req.WhatsAppNumber
	}
	if req.InstagramURL != nil {
		updates[repository.KeyInstagramURL] = *req.InstagramURL
	}
	if req.HomeServiceDays != nil {
		for _, d := range *req.HomeServiceDays {
			if d < 0 || d > 6 {
				httperr.BadRequest(c, "invalid_home_service_days", "Dias de atendimento a domicílio devem ficar entre 0 e 6.")
				return
			}
		}
		updates[repository.KeyHomeServiceDays] = repository.EncodeHomeServiceDays(*req.HomeServiceDays)
	}
	if req.FollowupDays != nil {
		if *req.FollowupDays < followup.MinDays || *req.FollowupDays > followup.MaxDays {
			httperr.BadRequest(c, "invalid_followup_days", "O período de retorno deve ficar entre 1 e 365 dias.")
			return
		}
		updates[repository.KeyFollowupDays] = strconv.Itoa(*req.FollowupDays)
	}
	if req.FollowupMessage != nil {
		updates[repository.KeyFollowupMessage] = *req.FollowupMessage
	}
	if req.AdminPassword != nil {
		if len(*req.AdminPassword) < 4 {
			httperr.BadRequest(c, "password_too_short", "A senha deve ter pelo menos 4 caracteres.")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao atualizar a senha.")
			return
		}
		updates[repository.KeyAdminPasswordHash] = string(hashed)
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "Nenhum campo para atualizar.")
		return
	}

	ctx := c.Request.Context()
	if err := h.cfgs.Save(ctx, updates); err != nil {
		httperr.Internal(c, "failed_to_save_config", "Erro ao salvar configuração.")
		return
	}

	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	h.audit.Dispatch(audit.Event{
		Action:   "settings_updated",
		Entity:   "config",
		Metadata: map[string]any{"keys": keys},
	})

	httpresp.OK(c, h.cfgs.Load(ctx))
}

// --------- Galeria ---------

// UploadImage recebe o arquivo multipart "image", reencoda em webp e
// devolve a URL pública.
func (h *SettingsHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Envie o arquivo no campo image.")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "A imagem deve ter no máximo 10MB.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler a imagem.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler a imagem.")
		return
	}

	url, err := h.gallery.Upload(c.Request.Context(), data)
	if err != nil {
		log.Println("gallery upload failed:", err)
		httperr.Internal(c, "failed_to_upload_image", "Erro ao enviar a imagem.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "gallery_image_uploaded",
		Entity:   "gallery",
		Metadata: map[string]any{"url": url},
	})

	httpresp.OK(c, gin.H{"url": url})
}

func (h *SettingsHandler) ListImages(c *gin.Context) {
	urls, err := h.gallery.List(c.Request.Context())
	if err != nil {
		log.Println("gallery list failed:", err)
		httperr.Internal(c, "failed_to_list_images", "Erro ao buscar a galeria.")
		return
	}

	httpresp.List(c, urls)
}

func (h *SettingsHandler) DeleteImage(c *gin.Context) {
	var req DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe a URL da imagem.")
		return
	}

	if err := h.gallery.Delete(c.Request.Context(), req.URL); err != nil {
		log.Println("gallery delete failed:", err)
		httperr.Internal(c, "failed_to_delete_image", "Erro ao excluir a imagem.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "gallery_image_deleted",
		Entity:   "gallery",
		Metadata: map[string]any{"url": req.URL},
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
