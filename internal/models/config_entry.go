package models

import "time"

// Linha chave/valor da configuração do salão. Campos com valor composto
// (home_service_days) são gravados como JSON serializado.
type ConfigEntry struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`

	UpdatedAt time.Time `json:"updated_at"`
}

// SalonConfig é a visão materializada das linhas de configuração.
type SalonConfig struct {
	StylistName        string `json:"stylist_name"`
	ServiceDescription string `json:"service_description"`
	SalonAddress       string `json:"salon_address"`
	WhatsAppNumber     string `json:"whatsapp_number"`
	InstagramURL       string `json:"instagram_url"`
	HomeServiceDays    []int  `json:"home_service_days"`

	FollowupDays    int    `json:"followup_days"`
	FollowupMessage string `json:"followup_message"`

	AdminPasswordHash string `json:"-"`
}
