package dto

import "time"

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=150"`
	Slug        string  `json:"slug" binding:"required,min=2,max=150"`
	Description string  `json:"description" binding:"omitempty,max=5000"`
	Condition   string  `json:"condition" binding:"omitempty,oneof=NEW USED REFURBISHED"`
	SizeFt      int     `json:"size_ft" binding:"omitempty,min=1,max=100"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"omitempty,min=0"`
	Featured    bool    `json:"featured"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name" binding:"omitempty,min=2,max=150"`
	Description string   `json:"description" binding:"omitempty,max=5000"`
	Condition   string   `json:"condition" binding:"omitempty,oneof=NEW USED REFURBISHED"`
	SizeFt      *int     `json:"size_ft" binding:"omitempty,min=1,max=100"`
	CategoryID  *uint    `json:"category_id"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Stock       *int     `json:"stock" binding:"omitempty,min=0"`
	Featured    *bool    `json:"featured"`
	Active      *bool    `json:"active"`
}

// ProductFilter carries storefront shop filters.
type ProductFilter struct {
	CategorySlug string  `form:"category"`
	Condition    string  `form:"condition"`
	SizeFt       int     `form:"size_ft"`
	PriceMin     float64 `form:"price_min"`
	PriceMax     float64 `form:"price_max"`
	FeaturedOnly bool    `form:"featured"`
}

type ProductImageResponse struct {
	ID       uint   `json:"id"`
	FileName string `json:"file_name"`
	Position int    `json:"position"`
}

type ProductResponse struct {
	ID          uint                   `json:"id"`
	Name        string                 `json:"name"`
	Slug        string                 `json:"slug"`
	Description string                 `json:"description,omitempty"`
	Condition   string                 `json:"condition,omitempty"`
	SizeFt      int                    `json:"size_ft,omitempty"`
	CategoryID  uint                   `json:"category_id"`
	Category    string                 `json:"category,omitempty"`
	Price       float64                `json:"price"`
	Stock       int                    `json:"stock"`
	Featured    bool                   `json:"featured"`
	Active      bool                   `json:"active"`
	ViewCount   int64                  `json:"view_count"`
	Images      []ProductImageResponse `json:"images"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
