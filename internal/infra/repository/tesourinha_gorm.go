package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

type TesourinhaGormRepository struct {
	db *gorm.DB
}

func NewTesourinhaGormRepository(db *gorm.DB) *TesourinhaGormRepository {
	return &TesourinhaGormRepository{db: db}
}

func (r *TesourinhaGormRepository) List(ctx context.Context) ([]models.TesourinhaEntry, error) {
	var entries []models.TesourinhaEntry
	if err := r.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *TesourinhaGormRepository) Create(ctx context.Context, entry *models.TesourinhaEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *TesourinhaGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.TesourinhaEntry{}, id).Error
}
