package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("child_name ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) Get(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientGormRepository) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// Delete remove apenas o cliente; os agendamentos permanecem. O vínculo
// por id dos agendamentos é desfeito para que o casamento textual volte
// a valer se um cliente de mesmo nome for recadastrado.
func (r *ClientGormRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("client_id = ?", id).
		Update("client_id", nil).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&models.Client{}, id).Error
}
