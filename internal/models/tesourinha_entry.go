package models

import "time"

// Diário livre da tesourinha, agrupado por mês na listagem
type TesourinhaEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date string `gorm:"size:10;not null" json:"date"`
	Note string `gorm:"type:text;not null" json:"note"`

	CreatedAt time.Time `json:"created_at"`
}
