package repository

import (
	"context"

	"salesledger/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	ListAll(ctx context.Context) ([]model.Customer, error)
	ListByCodes(ctx context.Context, codes []string) ([]model.Customer, error)
	FindByCode(ctx context.Context, code string) (*model.Customer, error)
	UpdateByCode(ctx context.Context, code string, fields map[string]any) (int64, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// ListByCodes returns only existing matches; unknown codes are silently
// omitted.
func (r *customerRepository) ListByCodes(ctx context.Context, codes []string) ([]model.Customer, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	var customers []model.Customer
	if err := r.db.WithContext(ctx).Where("code IN ?", codes).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) FindByCode(ctx context.Context, code string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).First(&customer, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateByCode applies a partial patch and reports how many rows matched.
func (r *customerRepository) UpdateByCode(ctx context.Context, code string, fields map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Customer{}).Where("code = ?", code).Updates(fields)
	return result.RowsAffected, result.Error
}
