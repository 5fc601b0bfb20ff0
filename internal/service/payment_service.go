package service

import (
	"context"

	"salesledger/internal/apperr"
	"salesledger/internal/model"
	"salesledger/internal/repository"
	"salesledger/internal/timeutil"
)

type CreatePaymentRequest struct {
	CustomerCode string     `json:"customerCode"`
	Amount       WireNumber `json:"amount"`
	Date         string     `json:"date"`
}

// PaymentRow is a payment joined to its customer for display.
type PaymentRow struct {
	model.Payment
	Customer *model.Customer `json:"customer,omitempty"`
}

type PaymentService interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*model.Payment, error)
	ListPayments(ctx context.Context, date, customerCode string) ([]PaymentRow, error)
}

type paymentService struct {
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, customerRepo repository.CustomerRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, customerRepo: customerRepo}
}

func (s *paymentService) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*model.Payment, error) {
	if req.CustomerCode == "" || req.Amount.Empty() || req.Date == "" {
		return nil, apperr.Validation("missing required fields")
	}

	amount, err := req.Amount.Float()
	if err != nil {
		return nil, apperr.Validation("invalid amount")
	}
	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return nil, apperr.Validation("invalid date")
	}

	payment := &model.Payment{
		CustomerCode: req.CustomerCode,
		Amount:       amount,
		Date:         date,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, apperr.Store("failed to create payment record", err)
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, date, customerCode string) ([]PaymentRow, error) {
	filter, err := listFilter(date, customerCode)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Store("failed to fetch payment records", err)
	}
	rows, err := joinCustomers(ctx, s.customerRepo, payments,
		func(payment model.Payment) string { return payment.CustomerCode },
		func(payment model.Payment, customer *model.Customer) PaymentRow {
			return PaymentRow{Payment: payment, Customer: customer}
		})
	if err != nil {
		return nil, apperr.Store("failed to fetch payment records", err)
	}
	return rows, nil
}
