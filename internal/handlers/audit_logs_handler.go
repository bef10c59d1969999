package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/httpresp"
	"github.com/tiadeasalon/salon-manager/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devolve os últimos eventos de auditoria, do mais recente para o
// mais antigo.
func (h *AuditLogsHandler) List(c *gin.Context) {
	var logs []models.AuditLog
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao buscar auditoria.")
		return
	}

	httpresp.List(c, logs)
}
