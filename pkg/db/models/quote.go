package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zimbwa-construction/quotes-backend/pkg/enums"
)

// Quote is the persisted record behind an issued quote number.
type Quote struct {
	ID            uint              `gorm:"column:id;primaryKey;autoIncrement"`
	QuoteNumber   string            `gorm:"column:quote_number;not null;uniqueIndex"`
	ClientName    string            `gorm:"column:client_name;not null"`
	ClientEmail   string            `gorm:"column:client_email;not null"`
	ClientPhone   string            `gorm:"column:client_phone;not null"`
	ClientAddress string            `gorm:"column:client_address;not null"`
	ValidityDays  int               `gorm:"column:validity_days;not null;default:14"`
	Terms         *string           `gorm:"column:terms"`
	GrandTotal    decimal.Decimal   `gorm:"column:grand_total;type:numeric(12,2);not null"`
	Status        enums.QuoteStatus `gorm:"column:status;not null;default:'draft'"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the quotes table name.
func (Quote) TableName() string {
	return "quotes"
}
