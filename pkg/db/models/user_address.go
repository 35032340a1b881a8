package models

import (
	"time"

	"github.com/google/uuid"
)

// UserAddress holds the single reusable shipping record per shopper,
// overwritten on every successful checkout.
type UserAddress struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	Name         string    `gorm:"column:name;not null"`
	MobileNumber string    `gorm:"column:mobile_number;not null"`
	AddressLine1 string    `gorm:"column:address_line1;not null"`
	AddressLine2 *string   `gorm:"column:address_line2"`
	Landmark     *string   `gorm:"column:landmark"`
	Pincode      string    `gorm:"column:pincode;not null"`
	City         string    `gorm:"column:city;not null"`
	State        string    `gorm:"column:state;not null"`
	Country      string    `gorm:"column:country;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
