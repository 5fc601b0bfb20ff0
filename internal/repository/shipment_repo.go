package repository

import (
	"context"

	"salesledger/internal/model"

	"gorm.io/gorm"
)

type ShipmentRepository interface {
	Create(ctx context.Context, shipment *model.Shipment) error
	List(ctx context.Context, filter RecordFilter) ([]model.Shipment, error)
}

type shipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) ShipmentRepository {
	return &shipmentRepository{db: db}
}

func (r *shipmentRepository) Create(ctx context.Context, shipment *model.Shipment) error {
	return r.db.WithContext(ctx).Create(shipment).Error
}

func (r *shipmentRepository) List(ctx context.Context, filter RecordFilter) ([]model.Shipment, error) {
	var shipments []model.Shipment
	q := applyRecordFilter(r.db.WithContext(ctx).Model(&model.Shipment{}), filter)
	if err := q.Order("date DESC").Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}
