package repository

import (
	"context"

	"salesledger/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *model.Sale) error
	List(ctx context.Context, filter RecordFilter) ([]model.Sale, error)
}

type saleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *model.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) List(ctx context.Context, filter RecordFilter) ([]model.Sale, error) {
	var sales []model.Sale
	q := applyRecordFilter(r.db.WithContext(ctx).Model(&model.Sale{}), filter)
	if err := q.Order("date DESC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
