package service

import (
	"context"

	"salesledger/internal/apperr"
	"salesledger/internal/model"
	"salesledger/internal/repository"
	"salesledger/internal/timeutil"
)

type CreateSaleRequest struct {
	CustomerCode string     `json:"customerCode"`
	Quantity     WireNumber `json:"quantity"`
	Price        WireNumber `json:"price"`
	Total        WireNumber `json:"total"`
	Date         string     `json:"date"`
}

// SaleRow is a sale joined to its customer for display. The customer key is
// absent when the record's code matches no directory entry.
type SaleRow struct {
	model.Sale
	Customer *model.Customer `json:"customer,omitempty"`
}

type SaleService interface {
	CreateSale(ctx context.Context, req CreateSaleRequest) (*model.Sale, error)
	ListSales(ctx context.Context, date, customerCode string) ([]SaleRow, error)
}

type saleService struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

func NewSaleService(saleRepo repository.SaleRepository, customerRepo repository.CustomerRepository) SaleService {
	return &saleService{saleRepo: saleRepo, customerRepo: customerRepo}
}

func (s *saleService) CreateSale(ctx context.Context, req CreateSaleRequest) (*model.Sale, error) {
	if req.CustomerCode == "" || req.Quantity.Empty() || req.Price.Empty() || req.Date == "" {
		return nil, apperr.Validation("missing required fields")
	}

	quantity, err := req.Quantity.Float()
	if err != nil {
		return nil, apperr.Validation("invalid quantity")
	}
	price, err := req.Price.Float()
	if err != nil {
		return nil, apperr.Validation("invalid price")
	}
	// Total is stored as supplied, never recomputed from quantity*price.
	var total float64
	if !req.Total.Empty() {
		if total, err = req.Total.Float(); err != nil {
			return nil, apperr.Validation("invalid total")
		}
	}
	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return nil, apperr.Validation("invalid date")
	}

	sale := &model.Sale{
		CustomerCode: req.CustomerCode,
		Quantity:     quantity,
		Price:        price,
		Total:        total,
		Date:         date,
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, apperr.Store("failed to create sale record", err)
	}
	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, date, customerCode string) ([]SaleRow, error) {
	filter, err := listFilter(date, customerCode)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Store("failed to fetch sale records", err)
	}
	rows, err := joinCustomers(ctx, s.customerRepo, sales,
		func(sale model.Sale) string { return sale.CustomerCode },
		func(sale model.Sale, customer *model.Customer) SaleRow {
			return SaleRow{Sale: sale, Customer: customer}
		})
	if err != nil {
		return nil, apperr.Store("failed to fetch sale records", err)
	}
	return rows, nil
}
