package models

import "time"

// Receita lançada manualmente, fora do valor de serviço dos agendamentos.
// Não há edição: apenas criação e exclusão.
type FinancialRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date        string  `gorm:"size:10;not null" json:"date"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Description string  `gorm:"size:255" json:"description"`

	// Referência livre, não é chave estrangeira
	AppointmentID *uint `json:"appointment_id"`

	CreatedAt time.Time `json:"created_at"`
}
