package repository

import (
	"context"

	"salesledger/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	List(ctx context.Context, filter RecordFilter) ([]model.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) List(ctx context.Context, filter RecordFilter) ([]model.Payment, error) {
	var payments []model.Payment
	q := applyRecordFilter(r.db.WithContext(ctx).Model(&model.Payment{}), filter)
	if err := q.Order("date DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
