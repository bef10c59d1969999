package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tiadeasalon/salon-manager/internal/infra/repository"
)

func newDeadDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Mock sem expectativas: toda query e toda transação falham, como num
	// banco fora do ar.
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return gdb
}

func TestBooking_ReturnsLinkEvenWhenDBIsDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := newDeadDB(t)

	handler := NewPublicHandler(
		repository.NewClientGormRepository(gdb),
		repository.NewConfigGormRepository(gdb),
		nil,
		nil,
	)

	router := gin.New()
	router.POST("/api/public/booking", handler.Booking)

	body := `{
		"responsible_name": "Maria",
		"child_name": "Ana",
		"address": "Rua das Flores, 10",
		"birthdate": "2020-03-15"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "o link é o resultado principal e precisa sair mesmo sem banco")

	var resp struct {
		WhatsAppLink string `json:"whatsapp_link"`
		ClientSaved  bool   `json:"client_saved"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Contains(t, resp.WhatsAppLink, "wa.me/"+repository.DefaultWhatsAppNumber,
		"configuração indisponível cai no número padrão")
	assert.Contains(t, resp.WhatsAppLink, "text=")
	assert.False(t, resp.ClientSaved, "cadastro falhou, mas o fluxo não")
}

func TestBooking_RequiresAllFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := newDeadDB(t)

	handler := NewPublicHandler(
		repository.NewClientGormRepository(gdb),
		repository.NewConfigGormRepository(gdb),
		nil,
		nil,
	)

	router := gin.New()
	router.POST("/api/public/booking", handler.Booking)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/booking",
		strings.NewReader(`{"responsible_name": "Maria"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
