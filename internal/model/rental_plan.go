package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RentalPlan struct {
	gorm.Model
	Name         string          `gorm:"column:name;not null"`
	Slug         string          `gorm:"column:slug;unique;not null"`
	Description  string          `gorm:"column:description"`
	MonthlyPrice decimal.Decimal `gorm:"column:monthly_price;type:numeric(12,2);not null"`
	MinMonths    int             `gorm:"column:min_months;default:1;not null"`
	Active       bool            `gorm:"column:active;default:true;not null"`
}
