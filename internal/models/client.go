package models

import "time"

// Cliente é a criança; o responsável é quem agenda e recebe as mensagens
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ChildName       string `gorm:"size:100;not null" json:"child_name"`
	ResponsibleName string `gorm:"size:100;not null" json:"responsible_name"`

	Address   string `gorm:"size:255" json:"address"`
	Birthdate string `gorm:"size:10" json:"birthdate"`

	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`
	Notes string `gorm:"type:text" json:"notes"`

	ServiceCount int    `gorm:"default:0" json:"service_count"`
	ServiceType  string `gorm:"size:20;default:'Salão'" json:"service_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
