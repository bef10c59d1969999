package repository

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tiadeasalon/salon-manager/internal/domain/followup"
	"github.com/tiadeasalon/salon-manager/internal/models"
)

// Chaves da tabela de configuração
const (
	KeyStylistName        = "stylist_name"
	KeyServiceDescription = "service_description"
	KeySalonAddress       = "salon_address"
	KeyWhatsAppNumber     = "whatsapp_number"
	KeyInstagramURL       = "instagram_url"
	KeyHomeServiceDays    = "home_service_days"
	KeyFollowupDays       = "followup_days"
	KeyFollowupMessage    = "followup_message"
	KeyAdminPasswordHash  = "admin_password_hash"
)

// Padrões usados enquanto a tabela estiver vazia ou inacessível
const (
	DefaultStylistName        = "Tia Déa"
	DefaultServiceDescription = "Cortes mágicos para crianças!"
	DefaultSalonAddress       = "Salvador, Bahia"
	DefaultWhatsAppNumber     = "5571988624093"
	DefaultInstagramURL       = "https://instagram.com/tiadeacorteinfantil"
	DefaultAdminPassword      = "1234"
)

var defaultHomeServiceDays = []int{1, 2}

type ConfigGormRepository struct {
	db *gorm.DB
}

func NewConfigGormRepository(db *gorm.DB) *ConfigGormRepository {
	return &ConfigGormRepository{db: db}
}

// Load materializa as linhas chave/valor na configuração do salão,
// preenchendo padrões para chaves ausentes. Falha de leitura do banco
// não propaga: a configuração cai inteira nos padrões (com hash de
// senha vazio), para a vitrine e o fluxo de agendamento continuarem de
// pé durante uma indisponibilidade.
func (r *ConfigGormRepository) Load(ctx context.Context) *models.SalonConfig {
	var entries []models.ConfigEntry
	if err := r.db.WithContext(ctx).Find(&entries).Error; err != nil {
		log.Println("config load fallback to defaults:", err)
		return materializeConfig(nil)
	}

	values := make(map[string]string, len(entries))
	for _, e := range entries {
		values[e.Key] = e.Value
	}

	return materializeConfig(values)
}

func materializeConfig(values map[string]string) *models.SalonConfig {
	return &models.SalonConfig{
		StylistName:        valueOr(values, KeyStylistName, DefaultStylistName),
		ServiceDescription: valueOr(values, KeyServiceDescription, DefaultServiceDescription),
		SalonAddress:       valueOr(values, KeySalonAddress, DefaultSalonAddress),
		WhatsAppNumber:     valueOr(values, KeyWhatsAppNumber, DefaultWhatsAppNumber),
		InstagramURL:       valueOr(values, KeyInstagramURL, DefaultInstagramURL),
		HomeServiceDays:    ParseHomeServiceDays(values[KeyHomeServiceDays]),
		FollowupDays:       parseFollowupDays(values[KeyFollowupDays]),
		FollowupMessage:    valueOr(values, KeyFollowupMessage, followup.DefaultMessage),
		AdminPasswordHash:  values[KeyAdminPasswordHash],
	}
}

// Save aplica um merge-patch: só as chaves presentes são gravadas, com
// upsert por chave.
func (r *ConfigGormRepository) Save(ctx context.Context, updates map[string]string) error {
	for key, value := range updates {
		entry := models.ConfigEntry{Key: key, Value: value}
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).
			Create(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

// EnsureAdminPassword semeia o hash da senha padrão na primeira subida.
func (r *ConfigGormRepository) EnsureAdminPassword(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ConfigEntry{}).
		Where("key = ?", KeyAdminPasswordHash).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return r.Save(ctx, map[string]string{KeyAdminPasswordHash: string(hashed)})
}

// --------------------------------------------------
// Codecs
// --------------------------------------------------

// EncodeHomeServiceDays serializa a lista de dias como JSON.
func EncodeHomeServiceDays(days []int) string {
	b, err := json.Marshal(days)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// ParseHomeServiceDays decodifica a lista de dias, caindo no padrão
// quando o valor estiver ausente ou corrompido. Índices fora de 0 a 6
// são descartados.
func ParseHomeServiceDays(raw string) []int {
	if raw == "" {
		return append([]int(nil), defaultHomeServiceDays...)
	}

	var days []int
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return append([]int(nil), defaultHomeServiceDays...)
	}

	out := days[:0]
	for _, d := range days {
		if d >= 0 && d <= 6 {
			out = append(out, d)
		}
	}
	return out
}

func parseFollowupDays(raw string) int {
	days, err := strconv.Atoi(raw)
	if err != nil || days < followup.MinDays || days > followup.MaxDays {
		return followup.DefaultDays
	}
	return days
}

func valueOr(values map[string]string, key, def string) string {
	if v, ok := values[key]; ok && v != "" {
		return v
	}
	return def
}
