package service

import (
	"context"
	"testing"

	"salesledger/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShipment_IntegerQuantity(t *testing.T) {
	repos := setupServiceTestDB(t)
	svc := NewShipmentService(repos.shipments, repos.customers)
	ctx := context.Background()

	t.Run("whole number accepted", func(t *testing.T) {
		shipment, err := svc.CreateShipment(ctx, CreateShipmentRequest{
			CustomerCode: "C1", Quantity: "12", Date: "2024-01-10",
		})
		require.NoError(t, err)
		assert.Equal(t, 12, shipment.Quantity)
	})

	t.Run("fractional quantity rejected", func(t *testing.T) {
		// Shipments count discrete units; sale quantities may be fractional.
		_, err := svc.CreateShipment(ctx, CreateShipmentRequest{
			CustomerCode: "C1", Quantity: "12.5", Date: "2024-01-10",
		})
		var verr *apperr.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := svc.CreateShipment(ctx, CreateShipmentRequest{
			CustomerCode: "C1", Quantity: "12",
		})
		var verr *apperr.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestCreatePayment(t *testing.T) {
	repos := setupServiceTestDB(t)
	svc := NewPaymentService(repos.payments, repos.customers)
	ctx := context.Background()

	payment, err := svc.CreatePayment(ctx, CreatePaymentRequest{
		CustomerCode: "C1", Amount: "45.50", Date: "2024-01-10",
	})
	require.NoError(t, err)
	assert.Equal(t, 45.5, payment.Amount)

	_, err = svc.CreatePayment(ctx, CreatePaymentRequest{CustomerCode: "C1", Date: "2024-01-10"})
	var verr *apperr.ValidationError
	assert.ErrorAs(t, err, &verr)
}
