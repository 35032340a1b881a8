package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/internal/address"
	"github.com/nakshatra-astro/nakshatra-backend/internal/cart"
	"github.com/nakshatra-astro/nakshatra-backend/internal/orders"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the order-placement flow.
type Service interface {
	Quote(ctx context.Context, userID uuid.UUID) (*Quote, error)
	PlaceOrder(ctx context.Context, userID uuid.UUID, input ShippingInput) (*orders.OrderDTO, error)
}

type service struct {
	tx        txRunner
	cartRepo  cart.CartRepository
	orderRepo orders.OrderRepository
	addrRepo  address.AddressRepository
	now       func() time.Time
}

// NewService builds a checkout service backed by the provided stack.
func NewService(tx txRunner, cartRepo cart.CartRepository, orderRepo orders.OrderRepository, addrRepo address.AddressRepository) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if cartRepo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if orderRepo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if addrRepo == nil {
		return nil, fmt.Errorf("address repository required")
	}
	return &service{
		tx:        tx,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		addrRepo:  addrRepo,
		now:       time.Now,
	}, nil
}

// ShippingInput carries the delivery details collected at checkout.
type ShippingInput struct {
	Name         string
	MobileNumber string
	AddressLine1 string
	AddressLine2 *string
	Landmark     *string
	Pincode      string
	City         string
	State        string
	Country      string
}

func (in *ShippingInput) validate() error {
	required := map[string]string{
		"name":          in.Name,
		"mobile_number": in.MobileNumber,
		"address_line1": in.AddressLine1,
		"pincode":       in.Pincode,
		"city":          in.City,
		"state":         in.State,
		"country":       in.Country,
	}
	var missing []string
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "incomplete shipping details").
			WithDetails(map[string]any{"missing_fields": missing})
	}
	return nil
}

// Quote prices the user's current cart without side effects.
func (s *service) Quote(ctx context.Context, userID uuid.UUID) (*Quote, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	}
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	quote := QuoteLines(items)
	return &quote, nil
}

// PlaceOrder snapshots the cart into an order, saves the shipping address,
// and clears the cart. All four writes share one transaction so a partial
// failure can neither clear a cart without an order nor create an order
// without its lines.
func (s *service) PlaceOrder(ctx context.Context, userID uuid.UUID, input ShippingInput) (*orders.OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	orderNumber, err := newOrderNumber(s.now())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate order number")
	}

	var placed *models.Order
	txErr := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)

		items, err := cartRepo.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		quote := QuoteLines(items)

		order := &models.Order{
			UserID:         userID,
			OrderNumber:    orderNumber,
			Status:         enums.OrderStatusNew,
			Subtotal:       quote.Subtotal,
			Discount:       quote.Discount,
			DeliveryCharge: quote.DeliveryCharge,
			HandlingFee:    quote.HandlingFee,
			TotalAmount:    quote.GrandTotal,
			Name:           strings.TrimSpace(input.Name),
			MobileNumber:   strings.TrimSpace(input.MobileNumber),
			AddressLine1:   strings.TrimSpace(input.AddressLine1),
			AddressLine2:   input.AddressLine2,
			Landmark:       input.Landmark,
			Pincode:        strings.TrimSpace(input.Pincode),
			City:           strings.TrimSpace(input.City),
			State:          strings.TrimSpace(input.State),
			Country:        strings.TrimSpace(input.Country),
			Items:          make([]models.OrderItem, 0, len(items)),
		}

		for i := range items {
			item := &items[i]
			if item.Product == nil {
				return pkgerrors.New(pkgerrors.CodeDependency, "cart row references missing product")
			}
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.Product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.Product.EffectivePrice(),
			})
		}

		created, err := s.orderRepo.WithTx(tx).Create(ctx, order)
		if err != nil {
			return err
		}

		if _, err := s.addrRepo.WithTx(tx).Upsert(ctx, &models.UserAddress{
			UserID:       userID,
			Name:         order.Name,
			MobileNumber: order.MobileNumber,
			AddressLine1: order.AddressLine1,
			AddressLine2: order.AddressLine2,
			Landmark:     order.Landmark,
			Pincode:      order.Pincode,
			City:         order.City,
			State:        order.State,
			Country:      order.Country,
		}); err != nil {
			return err
		}

		if err := cartRepo.DeleteAllByUser(ctx, userID); err != nil {
			return err
		}

		placed = created
		return nil
	})
	if txErr != nil {
		if typed := pkgerrors.As(txErr); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, txErr, "place order")
	}

	return orders.NewOrderDTO(placed), nil
}
