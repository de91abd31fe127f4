package models

import (
	"time"

	"github.com/lib/pq"
)

// Product is a catalog listing. Rows are seeded once and never mutated
// by the storefront; identifiers are stable merchant SKUs like "kc001".
type Product struct {
	ID               string         `gorm:"column:id;primaryKey"`
	Name             string         `gorm:"column:name;not null"`
	Tags             pq.StringArray `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[]"`
	Price            int            `gorm:"column:price;not null"`
	Currency         string         `gorm:"column:currency;not null;default:'INR'"`
	Stock            int            `gorm:"column:stock;not null;default:0"`
	Image            string         `gorm:"column:image;not null"`
	ShortDescription string         `gorm:"column:short_description;not null"`
	LongDescription  string         `gorm:"column:long_description;not null"`
	Position         int            `gorm:"column:position;not null;default:0"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table used by migrations.
func (Product) TableName() string {
	return "products"
}
