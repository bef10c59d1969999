package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tiadeasalon/salon-manager/internal/config"
	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/infra/repository"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	cfgs   *repository.ConfigGormRepository
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		cfgs:   repository.NewConfigGormRepository(db),
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Login compara a senha contra o hash guardado na configuração e emite
// o token da sessão administrativa.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe a senha.")
		return
	}

	salon := h.cfgs.Load(c.Request.Context())

	if salon.AdminPasswordHash == "" {
		httperr.Unauthorized(c, "invalid_credentials", "Senha incorreta.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(salon.AdminPasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Senha incorreta.")
		return
	}

	token, err := h.generateToken()
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        token,
		"stylist_name": salon.StylistName,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken() (string, error) {
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
