package dto

import "time"

type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// QuoteRequest is a storefront inquiry; it becomes a NEW_LEAD order.
type QuoteRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required,min=2,max=100"`
	CustomerEmail string             `json:"customer_email" binding:"required,email"`
	CustomerPhone string             `json:"customer_phone" binding:"omitempty,min=7,max=15"`
	Message       string             `json:"message" binding:"omitempty,max=5000"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CheckoutRequest is a storefront purchase; it becomes a PENDING order.
type CheckoutRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required,min=2,max=100"`
	CustomerEmail string             `json:"customer_email" binding:"required,email"`
	CustomerPhone string             `json:"customer_phone" binding:"omitempty,min=7,max=15"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignOrderRequest struct {
	StaffID uint `json:"staff_id" binding:"required"`
}

type OrderItemResponse struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type OrderResponse struct {
	ID            uint                `json:"id"`
	Status        string              `json:"status"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	CustomerPhone string              `json:"customer_phone,omitempty"`
	Message       string              `json:"message,omitempty"`
	Total         float64             `json:"total"`
	AssignedTo    *UserResponse       `json:"assigned_to,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// CustomerResponse aggregates order rows into a customer view for the
// panel customer listing.
type CustomerResponse struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	OrderCount int64     `json:"order_count"`
	LastOrder  time.Time `json:"last_order"`
}
