package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
)

// Order is the immutable header created once at checkout; only admins touch
// the status and tracking fields afterwards.
type Order struct {
	ID             uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID         uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index"`
	OrderNumber    string            `gorm:"column:order_number;not null;uniqueIndex"`
	Status         enums.OrderStatus `gorm:"column:status;type:text;not null;default:'new'"`
	Subtotal       decimal.Decimal   `gorm:"column:subtotal;type:numeric(10,2);not null"`
	Discount       decimal.Decimal   `gorm:"column:discount;type:numeric(10,2);not null;default:0"`
	DeliveryCharge decimal.Decimal   `gorm:"column:delivery_charge;type:numeric(10,2);not null;default:0"`
	HandlingFee    decimal.Decimal   `gorm:"column:handling_fee;type:numeric(10,2);not null;default:0"`
	TotalAmount    decimal.Decimal   `gorm:"column:total_amount;type:numeric(10,2);not null"`

	Name           string  `gorm:"column:name;not null"`
	MobileNumber   string  `gorm:"column:mobile_number;not null"`
	AddressLine1   string  `gorm:"column:address_line1;not null"`
	AddressLine2   *string `gorm:"column:address_line2"`
	Landmark       *string `gorm:"column:landmark"`
	Pincode        string  `gorm:"column:pincode;not null"`
	City           string  `gorm:"column:city;not null"`
	State          string  `gorm:"column:state;not null"`
	Country        string  `gorm:"column:country;not null"`
	TrackingID     *string `gorm:"column:tracking_id"`
	CourierPartner *string `gorm:"column:courier_partner"`

	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}
