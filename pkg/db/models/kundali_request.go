package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
)

// KundaliRequest is one paid birth-chart report request.
type KundaliRequest struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	FullName    string              `gorm:"column:full_name;not null"`
	Gender      string              `gorm:"column:gender;not null"`
	BirthDate   time.Time           `gorm:"column:birth_date;not null"`
	BirthTime   string              `gorm:"column:birth_time;not null"`
	BirthPlace  string              `gorm:"column:birth_place;not null"`
	FatherName  *string             `gorm:"column:father_name"`
	KundaliType string              `gorm:"column:kundali_type;not null"`
	Price       decimal.Decimal     `gorm:"column:price;type:numeric(10,2);not null"`
	Status      enums.KundaliStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	ReportURL   *string             `gorm:"column:report_url"`
	AISummary   *string             `gorm:"column:ai_summary"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
