package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
)

// OrderDTO is the full order payload returned to clients.
type OrderDTO struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	OrderNumber    string            `json:"order_number"`
	Status         enums.OrderStatus `json:"status"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	Discount       decimal.Decimal   `json:"discount"`
	DeliveryCharge decimal.Decimal   `json:"delivery_charge"`
	HandlingFee    decimal.Decimal   `json:"handling_fee"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	Name           string            `json:"name"`
	MobileNumber   string            `json:"mobile_number"`
	AddressLine1   string            `json:"address_line1"`
	AddressLine2   *string           `json:"address_line2,omitempty"`
	Landmark       *string           `json:"landmark,omitempty"`
	Pincode        string            `json:"pincode"`
	City           string            `json:"city"`
	State          string            `json:"state"`
	Country        string            `json:"country"`
	TrackingID     *string           `json:"tracking_id,omitempty"`
	CourierPartner *string           `json:"courier_partner,omitempty"`
	Items          []OrderItemDTO    `json:"items"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// OrderItemDTO is one snapshotted order line.
type OrderItemDTO struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// NewOrderDTO maps the persisted order and its items.
func NewOrderDTO(order *models.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:             order.ID,
		UserID:         order.UserID,
		OrderNumber:    order.OrderNumber,
		Status:         order.Status,
		Subtotal:       order.Subtotal,
		Discount:       order.Discount,
		DeliveryCharge: order.DeliveryCharge,
		HandlingFee:    order.HandlingFee,
		TotalAmount:    order.TotalAmount,
		Name:           order.Name,
		MobileNumber:   order.MobileNumber,
		AddressLine1:   order.AddressLine1,
		AddressLine2:   order.AddressLine2,
		Landmark:       order.Landmark,
		Pincode:        order.Pincode,
		City:           order.City,
		State:          order.State,
		Country:        order.Country,
		TrackingID:     order.TrackingID,
		CourierPartner: order.CourierPartner,
		Items:          make([]OrderItemDTO, 0, len(order.Items)),
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
	for i := range order.Items {
		item := &order.Items[i]
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return dto
}

// NewOrderDTOs maps a slice of orders.
func NewOrderDTOs(rows []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewOrderDTO(&rows[i]))
	}
	return out
}
