package dto

import "time"

type CreateRentalPlanRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=100"`
	Slug         string  `json:"slug" binding:"required,min=2,max=100"`
	Description  string  `json:"description" binding:"omitempty,max=2000"`
	MonthlyPrice float64 `json:"monthly_price" binding:"required,gt=0"`
	MinMonths    int     `json:"min_months" binding:"omitempty,min=1"`
}

type UpdateRentalPlanRequest struct {
	Name         string   `json:"name" binding:"omitempty,min=2,max=100"`
	Description  string   `json:"description" binding:"omitempty,max=2000"`
	MonthlyPrice *float64 `json:"monthly_price" binding:"omitempty,gt=0"`
	MinMonths    *int     `json:"min_months" binding:"omitempty,min=1"`
	Active       *bool    `json:"active"`
}

type RentalPlanResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	MonthlyPrice float64   `json:"monthly_price"`
	MinMonths    int       `json:"min_months"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
