package service

import (
	"testing"

	"salesledger/internal/model"
	"salesledger/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testRepos struct {
	customers repository.CustomerRepository
	sales     repository.SaleRepository
	payments  repository.PaymentRepository
	shipments repository.ShipmentRepository
}

func setupServiceTestDB(t *testing.T) testRepos {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Customer{},
		&model.Sale{},
		&model.Payment{},
		&model.Shipment{},
	))

	return testRepos{
		customers: repository.NewCustomerRepository(db),
		sales:     repository.NewSaleRepository(db),
		payments:  repository.NewPaymentRepository(db),
		shipments: repository.NewShipmentRepository(db),
	}
}
