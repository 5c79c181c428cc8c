package usecase

import (
	"context"
	"testing"

	"arogyamix-server/internal/delivery/dto"
	"arogyamix-server/internal/domain/entity"
	"arogyamix-server/internal/repository"
	"arogyamix-server/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recordingAudit captures audit actions without touching a database.
type recordingAudit struct {
	actions []string
}

func (a *recordingAudit) Record(ctx context.Context, db *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) {
	a.actions = append(a.actions, action)
}

func newCartFixture() (CartUsecase, *service.CartStore, *recordingAudit) {
	store := service.NewCartStore()
	audit := &recordingAudit{}
	uc := NewCartUsecase(nil, logrus.New(), store, repository.NewProductCatalog(), audit, 50)
	return uc, store, audit
}

func TestCartAdjustAndSummary(t *testing.T) {
	uc, _, _ := newCartFixture()
	ctx := context.Background()
	userID := uuid.New()

	// 2x Organic Foxtail Millet (180) + 1x Himalayan Almonds (850)
	_, err := uc.Adjust(ctx, userID, &dto.AdjustCartRequest{ProductID: 1, Delta: 2})
	require.NoError(t, err)
	cart, err := uc.Adjust(ctx, userID, &dto.AdjustCartRequest{ProductID: 2, Delta: 1})
	require.NoError(t, err)

	assert.Equal(t, 3, cart.TotalItems)
	assert.True(t, cart.Subtotal.Equal(decimal.NewFromInt(1210)))
	assert.True(t, cart.DeliveryFee.Equal(decimal.NewFromInt(50)))
	assert.True(t, cart.Total.Equal(decimal.NewFromInt(1260)))
	require.Len(t, cart.Items, 2)
	assert.True(t, cart.Items[0].LineTotal.Equal(decimal.NewFromInt(360)))
}

func TestCartAdjustUnknownProduct(t *testing.T) {
	uc, _, _ := newCartFixture()

	_, err := uc.Adjust(context.Background(), uuid.New(), &dto.AdjustCartRequest{ProductID: 99, Delta: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartAdjustOutOfStock(t *testing.T) {
	uc, _, _ := newCartFixture()

	// Premium Dates are out of stock
	_, err := uc.Adjust(context.Background(), uuid.New(), &dto.AdjustCartRequest{ProductID: 4, Delta: 1})
	assert.ErrorIs(t, err, ErrProductOutOfStock)
}

func TestCartRemovalAllowedForAnyProduct(t *testing.T) {
	uc, store, _ := newCartFixture()
	ctx := context.Background()
	userID := uuid.New()

	// A stale entry for a product that later went out of stock can still
	// be removed.
	store.Adjust(userID, 4, 1)

	cart, err := uc.Adjust(ctx, userID, &dto.AdjustCartRequest{ProductID: 4, Delta: -1})
	require.NoError(t, err)
	assert.Equal(t, 0, cart.TotalItems)
}

func TestCartEmptySummaryHasNoDeliveryFee(t *testing.T) {
	uc, _, _ := newCartFixture()

	cart, err := uc.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Subtotal.IsZero())
	assert.True(t, cart.DeliveryFee.IsZero())
	assert.True(t, cart.Total.IsZero())
}

func TestCartSummarySkipsUnknownEntries(t *testing.T) {
	uc, store, _ := newCartFixture()
	userID := uuid.New()

	store.Adjust(userID, 1, 1)
	store.Adjust(userID, 99, 3)

	cart, err := uc.Get(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].ProductID)
	assert.True(t, cart.Subtotal.Equal(decimal.NewFromInt(180)))
}

func TestCheckoutValidation(t *testing.T) {
	uc, store, _ := newCartFixture()
	ctx := context.Background()
	userID := uuid.New()

	_, err := uc.Checkout(ctx, userID, &dto.CheckoutRequest{DeliveryAddress: "12 MG Road", PhoneNumber: "9876543210"})
	assert.ErrorIs(t, err, ErrCartEmpty)

	store.Adjust(userID, 1, 1)

	_, err = uc.Checkout(ctx, userID, &dto.CheckoutRequest{DeliveryAddress: "   ", PhoneNumber: "9876543210"})
	assert.ErrorIs(t, err, ErrAddressRequired)

	_, err = uc.Checkout(ctx, userID, &dto.CheckoutRequest{DeliveryAddress: "12 MG Road", PhoneNumber: "12345"})
	assert.ErrorIs(t, err, ErrPhoneTooShort)
}

func TestCheckoutClearsCartAndRecordsOrder(t *testing.T) {
	uc, store, audit := newCartFixture()
	ctx := context.Background()
	userID := uuid.New()

	store.Adjust(userID, 1, 2)
	store.Adjust(userID, 2, 1)

	result, err := uc.Checkout(ctx, userID, &dto.CheckoutRequest{
		DeliveryAddress: "12 MG Road, Bengaluru",
		PhoneNumber:     "9876543210",
	})
	require.NoError(t, err)

	assert.True(t, result.Total.Equal(decimal.NewFromInt(1260)))
	assert.Equal(t, "cod", result.PaymentMethod)
	assert.Contains(t, result.Message, "₹1260")
	assert.Contains(t, audit.actions, entity.AuditActionOrderCheckout)
	assert.True(t, store.Ledger(userID).IsEmpty())
}

func TestCheckoutOnlinePaymentNote(t *testing.T) {
	uc, store, _ := newCartFixture()
	ctx := context.Background()
	userID := uuid.New()

	store.Adjust(userID, 3, 1)

	result, err := uc.Checkout(ctx, userID, &dto.CheckoutRequest{
		DeliveryAddress: "12 MG Road",
		PhoneNumber:     "9876543210",
		PaymentMethod:   "online",
	})
	require.NoError(t, err)
	assert.Equal(t, "online", result.PaymentMethod)
	assert.Contains(t, result.Message, "Payment link")
}
