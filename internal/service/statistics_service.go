package service

import (
	"context"

	"salesledger/internal/apperr"
	"salesledger/internal/model"
	"salesledger/internal/repository"
	"salesledger/internal/timeutil"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context, from, to string) ([]model.CustomerStatistic, error)
}

type statisticsService struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	paymentRepo  repository.PaymentRepository
	shipmentRepo repository.ShipmentRepository
}

func NewStatisticsService(
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	paymentRepo repository.PaymentRepository,
	shipmentRepo repository.ShipmentRepository,
) StatisticsService {
	return &statisticsService{
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		paymentRepo:  paymentRepo,
		shipmentRepo: shipmentRepo,
	}
}

type accumulator struct {
	sales     float64
	payments  float64
	shipments int
}

// GetStatistics produces one summary row per known customer over the
// inclusive [from, to] window. Sales totals are recomputed as
// quantity*price; the stored total field plays no part here. An inverted
// range is accepted and simply yields the empty window, so every customer
// comes back with zeros.
func (s *statisticsService) GetStatistics(ctx context.Context, from, to string) ([]model.CustomerStatistic, error) {
	if from == "" || to == "" {
		return nil, apperr.ErrMissingDateRange
	}

	fromDate, err := timeutil.ParseDate(from)
	if err != nil {
		return nil, apperr.Validation("invalid from date")
	}
	toDate, err := timeutil.ParseDate(to)
	if err != nil {
		return nil, apperr.Validation("invalid to date")
	}
	start := timeutil.DayStart(fromDate)
	end := timeutil.DayEnd(toDate)
	window := repository.RecordFilter{From: &start, To: &end}

	// Every known customer appears in the output, active in the window or
	// not, so the directory fetch is unfiltered.
	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Store("failed to fetch statistics", err)
	}
	sales, err := s.saleRepo.List(ctx, window)
	if err != nil {
		return nil, apperr.Store("failed to fetch statistics", err)
	}
	payments, err := s.paymentRepo.List(ctx, window)
	if err != nil {
		return nil, apperr.Store("failed to fetch statistics", err)
	}
	shipments, err := s.shipmentRepo.List(ctx, window)
	if err != nil {
		return nil, apperr.Store("failed to fetch statistics", err)
	}

	// One pass per record set into a code-keyed accumulator. Codes that
	// match no customer accumulate here but are never emitted below, which
	// drops orphan records from every total.
	totals := make(map[string]*accumulator, len(customers))
	reduce := func(code string) *accumulator {
		acc, ok := totals[code]
		if !ok {
			acc = &accumulator{}
			totals[code] = acc
		}
		return acc
	}
	for _, sale := range sales {
		reduce(sale.CustomerCode).sales += sale.Quantity * sale.Price
	}
	for _, payment := range payments {
		reduce(payment.CustomerCode).payments += payment.Amount
	}
	for _, shipment := range shipments {
		reduce(shipment.CustomerCode).shipments += shipment.Quantity
	}

	statistics := make([]model.CustomerStatistic, 0, len(customers))
	for _, customer := range customers {
		acc := totals[customer.Code]
		if acc == nil {
			acc = &accumulator{}
		}
		statistics = append(statistics, model.CustomerStatistic{
			CustomerCode:   customer.Code,
			CustomerName:   customer.Name,
			TotalSales:     acc.sales,
			TotalPayments:  acc.payments,
			Balance:        acc.sales - acc.payments,
			TotalShipments: acc.shipments,
		})
	}
	return statistics, nil
}
