package models

import "github.com/shopspring/decimal"

// QuoteService snapshots one billable line within a quote. The total is
// computed once at insert time and never re-derived.
type QuoteService struct {
	ID          uint            `gorm:"column:id;primaryKey;autoIncrement"`
	QuoteID     uint            `gorm:"column:quote_id;not null;index"`
	Description string          `gorm:"column:description;not null"`
	Unit        string          `gorm:"column:unit;not null"`
	Quantity    decimal.Decimal `gorm:"column:quantity;type:numeric(12,2);not null"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	Total       decimal.Decimal `gorm:"column:total;type:numeric(12,2);not null"`
}

// TableName pins the quote_services table name.
func (QuoteService) TableName() string {
	return "quote_services"
}
