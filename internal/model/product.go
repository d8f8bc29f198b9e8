package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a container listed for sale or rent. Price is persisted as
// exact NUMERIC; conversion to float happens only in the DTO layer.
type Product struct {
	gorm.Model
	Name        string          `gorm:"column:name;not null"`
	Slug        string          `gorm:"column:slug;unique;not null"`
	Description string          `gorm:"column:description"`
	Condition   string          `gorm:"column:condition"`
	SizeFt      int             `gorm:"column:size_ft"`
	CategoryID  uint            `gorm:"column:category_id;index;not null"`
	Category    Category        `gorm:"foreignKey:CategoryID"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Stock       int             `gorm:"column:stock;default:0;not null"`
	Featured    bool            `gorm:"column:featured;default:false;not null"`
	Active      bool            `gorm:"column:active;default:true;not null"`
	ViewCount   int64           `gorm:"column:view_count;default:0;not null"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

type ProductImage struct {
	gorm.Model
	ProductID uint   `gorm:"column:product_id;index;not null"`
	FileName  string `gorm:"column:file_name;not null"`
	Position  int    `gorm:"column:position;default:0;not null"`
}
