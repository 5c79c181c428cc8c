package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"arogyamix-server/internal/delivery/dto"
	"arogyamix-server/internal/domain/entity"
	"arogyamix-server/internal/domain/repository"
	"arogyamix-server/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductOutOfStock = errors.New("product is out of stock")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrAddressRequired   = errors.New("delivery address is required")
	ErrPhoneTooShort     = errors.New("phone number must be at least 10 characters")
)

const minCheckoutPhoneLen = 10

type CartUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (*dto.CartResponse, error)
	Adjust(ctx context.Context, userID uuid.UUID, req *dto.AdjustCartRequest) (*dto.CartResponse, error)
	Checkout(ctx context.Context, userID uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type cartUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cartStore    *service.CartStore
	productRepo  repository.ProductRepository
	auditService service.AuditService
	deliveryFee  decimal.Decimal
}

func NewCartUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cartStore *service.CartStore,
	productRepo repository.ProductRepository,
	auditService service.AuditService,
	deliveryFee int64,
) CartUsecase {
	return &cartUsecase{
		db:           db,
		log:          log,
		cartStore:    cartStore,
		productRepo:  productRepo,
		auditService: auditService,
		deliveryFee:  decimal.NewFromInt(deliveryFee),
	}
}

func (u *cartUsecase) Get(ctx context.Context, userID uuid.UUID) (*dto.CartResponse, error) {
	return u.summarize(ctx, u.cartStore.Ledger(userID))
}

// Adjust applies a quantity delta for a product. Adding requires the
// product to exist and be in stock; removals are always allowed so stale
// entries can be cleared.
func (u *cartUsecase) Adjust(ctx context.Context, userID uuid.UUID, req *dto.AdjustCartRequest) (*dto.CartResponse, error) {
	if req.Delta > 0 {
		product, err := u.productRepo.FindByID(ctx, req.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		if !product.InStock {
			return nil, ErrProductOutOfStock
		}
	}

	u.cartStore.Adjust(userID, req.ProductID, req.Delta)
	return u.summarize(ctx, u.cartStore.Ledger(userID))
}

// Checkout validates the order and produces a confirmation. Checkout is
// simulated: no payment processor is called and no order row is written,
// but the cart is cleared and the order is recorded in the audit trail.
func (u *cartUsecase) Checkout(ctx context.Context, userID uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	ledger := u.cartStore.Ledger(userID)
	if ledger.IsEmpty() {
		return nil, ErrCartEmpty
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, ErrAddressRequired
	}
	if len(strings.TrimSpace(req.PhoneNumber)) < minCheckoutPhoneLen {
		return nil, ErrPhoneTooShort
	}

	summary, err := u.summarize(ctx, ledger)
	if err != nil {
		return nil, err
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cod"
	}

	paymentNote := "Pay on delivery."
	if paymentMethod == "online" {
		paymentNote = "Payment link sent to your phone."
	}

	u.auditService.Record(ctx, u.db, &userID, entity.AuditActionOrderCheckout, entity.JSON{
		"total":          summary.Total.String(),
		"total_items":    summary.TotalItems,
		"payment_method": paymentMethod,
	})

	u.cartStore.Clear(userID)

	u.log.Infof("Order placed: user=%s, items=%d, total=%s", userID, summary.TotalItems, summary.Total)
	return &dto.CheckoutResponse{
		Message:       fmt.Sprintf("Order placed successfully! Your order of ₹%s will be delivered soon. %s", summary.Total, paymentNote),
		Total:         summary.Total,
		PaymentMethod: paymentMethod,
	}, nil
}

// summarize resolves the ledger against the catalog. Entries referencing
// unknown products are skipped; the delivery fee applies only when the
// subtotal is positive.
func (u *cartUsecase) summarize(ctx context.Context, ledger entity.Ledger) (*dto.CartResponse, error) {
	productIDs := make([]int, 0, len(ledger))
	for id := range ledger {
		productIDs = append(productIDs, id)
	}
	sort.Ints(productIDs)

	items := make([]dto.CartItemResponse, 0, len(productIDs))
	subtotal := decimal.Zero
	totalItems := 0

	for _, id := range productIDs {
		product, err := u.productRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}

		quantity := ledger.Quantity(id)
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
		items = append(items, dto.CartItemResponse{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
			LineTotal: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
		totalItems += quantity
	}

	total := subtotal
	deliveryFee := decimal.Zero
	if subtotal.IsPositive() {
		deliveryFee = u.deliveryFee
		total = subtotal.Add(deliveryFee)
	}

	return &dto.CartResponse{
		Items:       items,
		TotalItems:  totalItems,
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       total,
	}, nil
}
