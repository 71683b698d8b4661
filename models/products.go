package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog as published by the upstream store API.
// It includes a numeric id, display fields, a price, a free-text category and a rating.
type Product struct {
	ID          int             `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"index;not null" json:"category"`
	Rating      Rating          `gorm:"embedded;embeddedPrefix:rating_" json:"rating"`
	Image       string          `json:"image"`
	Description string          `gorm:"type:text" json:"description"`
}

// Rating is the aggregated customer rating of a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

func (p *Product) TableName() string {
	return "products"
}
