package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

type FinancialGormRepository struct {
	db *gorm.DB
}

func NewFinancialGormRepository(db *gorm.DB) *FinancialGormRepository {
	return &FinancialGormRepository{db: db}
}

func (r *FinancialGormRepository) List(ctx context.Context) ([]models.FinancialRecord, error) {
	var records []models.FinancialRecord
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FinancialGormRepository) ListByMonth(
	ctx context.Context,
	year int,
	month time.Month,
) ([]models.FinancialRecord, error) {

	start := fmt.Sprintf("%04d-%02d-01", year, int(month))
	end := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, 0).
		Format("2006-01-02")

	var records []models.FinancialRecord
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FinancialGormRepository) Create(
	ctx context.Context,
	record *models.FinancialRecord,
) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *FinancialGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.FinancialRecord{}, id).Error
}
