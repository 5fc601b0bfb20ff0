package service

import (
	"context"

	"salesledger/internal/apperr"
	"salesledger/internal/model"
	"salesledger/internal/repository"
)

type CreateCustomerRequest struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	StoreName string `json:"storeName"`
	Region    string `json:"region"`
}

// UpdateCustomerRequest is a partial patch addressed by code. Only supplied
// fields are overwritten; the code itself is immutable.
type UpdateCustomerRequest struct {
	Code      string  `json:"code"`
	Name      *string `json:"name"`
	ShortName *string `json:"shortName"`
	StoreName *string `json:"storeName"`
	Region    *string `json:"region"`
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, req UpdateCustomerRequest) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*model.Customer, error) {
	customer := &model.Customer{
		Code:      req.Code,
		Name:      req.Name,
		ShortName: req.ShortName,
		StoreName: req.StoreName,
		Region:    req.Region,
	}
	// Duplicate codes are rejected by the store's unique index.
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, apperr.Store("failed to create customer", err)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Store("failed to fetch customers", err)
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, req UpdateCustomerRequest) error {
	if req.Code == "" {
		return apperr.Validation("customer code is required")
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ShortName != nil {
		fields["short_name"] = *req.ShortName
	}
	if req.StoreName != nil {
		fields["store_name"] = *req.StoreName
	}
	if req.Region != nil {
		fields["region"] = *req.Region
	}

	if len(fields) == 0 {
		// Nothing to patch; still report whether the target exists.
		if _, err := s.customerRepo.FindByCode(ctx, req.Code); err != nil {
			return apperr.NotFound("customer not found")
		}
		return nil
	}

	matched, err := s.customerRepo.UpdateByCode(ctx, req.Code, fields)
	if err != nil {
		return apperr.Store("failed to update customer", err)
	}
	if matched == 0 {
		return apperr.NotFound("customer not found")
	}
	return nil
}
