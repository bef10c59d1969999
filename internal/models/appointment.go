package models

import (
	"strings"
	"time"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// ClientID é resolvido na criação pelo matcher de clientes.
	// Registros antigos podem não ter o vínculo; nesses casos vale o
	// ClientName textual.
	ClientID   *uint  `json:"client_id"`
	ClientName string `gorm:"size:150;not null" json:"client_name"`

	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Location string `gorm:"size:20;default:'Salão'" json:"location"`
	Status   string `gorm:"size:20;default:'pending'" json:"status"`

	Notes        string   `gorm:"size:255" json:"notes"`
	ServiceValue *float64 `json:"service_value"`

	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DateTime junta data e hora no formato combinado usado pela API.
func (a *Appointment) DateTime() string {
	return strings.TrimSpace(a.Date + " " + a.Time)
}

// ParsedDate interpreta a data do agendamento no fuso informado.
func (a *Appointment) ParsedDate(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", a.Date, loc)
}
