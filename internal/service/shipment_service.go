package service

import (
	"context"

	"salesledger/internal/apperr"
	"salesledger/internal/model"
	"salesledger/internal/repository"
	"salesledger/internal/timeutil"
)

type CreateShipmentRequest struct {
	CustomerCode string     `json:"customerCode"`
	Quantity     WireNumber `json:"quantity"`
	Date         string     `json:"date"`
}

// ShipmentRow is a shipment joined to its customer for display.
type ShipmentRow struct {
	model.Shipment
	Customer *model.Customer `json:"customer,omitempty"`
}

type ShipmentService interface {
	CreateShipment(ctx context.Context, req CreateShipmentRequest) (*model.Shipment, error)
	ListShipments(ctx context.Context, date, customerCode string) ([]ShipmentRow, error)
}

type shipmentService struct {
	shipmentRepo repository.ShipmentRepository
	customerRepo repository.CustomerRepository
}

func NewShipmentService(shipmentRepo repository.ShipmentRepository, customerRepo repository.CustomerRepository) ShipmentService {
	return &shipmentService{shipmentRepo: shipmentRepo, customerRepo: customerRepo}
}

func (s *shipmentService) CreateShipment(ctx context.Context, req CreateShipmentRequest) (*model.Shipment, error) {
	if req.CustomerCode == "" || req.Quantity.Empty() || req.Date == "" {
		return nil, apperr.Validation("missing required fields")
	}

	// Shipped units are whole counts; integer parsing is deliberate.
	quantity, err := req.Quantity.Int()
	if err != nil {
		return nil, apperr.Validation("invalid quantity")
	}
	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return nil, apperr.Validation("invalid date")
	}

	shipment := &model.Shipment{
		CustomerCode: req.CustomerCode,
		Quantity:     quantity,
		Date:         date,
	}
	if err := s.shipmentRepo.Create(ctx, shipment); err != nil {
		return nil, apperr.Store("failed to create shipment record", err)
	}
	return shipment, nil
}

func (s *shipmentService) ListShipments(ctx context.Context, date, customerCode string) ([]ShipmentRow, error) {
	filter, err := listFilter(date, customerCode)
	if err != nil {
		return nil, err
	}
	shipments, err := s.shipmentRepo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Store("failed to fetch shipment records", err)
	}
	rows, err := joinCustomers(ctx, s.customerRepo, shipments,
		func(shipment model.Shipment) string { return shipment.CustomerCode },
		func(shipment model.Shipment, customer *model.Customer) ShipmentRow {
			return ShipmentRow{Shipment: shipment, Customer: customer}
		})
	if err != nil {
		return nil, apperr.Store("failed to fetch shipment records", err)
	}
	return rows, nil
}
