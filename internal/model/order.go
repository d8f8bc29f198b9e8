package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus tracks a customer engagement through the sales funnel.
type OrderStatus string

const (
	StatusNewLead       OrderStatus = "NEW_LEAD"
	StatusLead          OrderStatus = "LEAD"
	StatusHotLead       OrderStatus = "HOT_LEAD"
	StatusNotInterested OrderStatus = "NOT_INTERESTED"
	StatusPending       OrderStatus = "PENDING"
	StatusPaid          OrderStatus = "PAID"
	StatusReviewed      OrderStatus = "REVIEWED"
	StatusCompleted     OrderStatus = "COMPLETED"
	StatusCancelled     OrderStatus = "CANCELLED"
	StatusExpired       OrderStatus = "EXPIRED"
)

var orderStatuses = map[OrderStatus]bool{
	StatusNewLead:       true,
	StatusLead:          true,
	StatusHotLead:       true,
	StatusNotInterested: true,
	StatusPending:       true,
	StatusPaid:          true,
	StatusReviewed:      true,
	StatusCompleted:     true,
	StatusCancelled:     true,
	StatusExpired:       true,
}

func (s OrderStatus) Valid() bool {
	return orderStatuses[s]
}

// legalTransitions lists the forward and lateral moves the funnel
// permits. Terminal states have no outgoing moves; NOT_INTERESTED may
// be reopened to LEAD by staff.
var legalTransitions = map[OrderStatus][]OrderStatus{
	StatusNewLead:       {StatusLead, StatusHotLead, StatusNotInterested, StatusCancelled},
	StatusLead:          {StatusHotLead, StatusNotInterested, StatusPaid, StatusExpired, StatusCancelled},
	StatusHotLead:       {StatusPaid, StatusNotInterested, StatusExpired, StatusCancelled},
	StatusNotInterested: {StatusLead, StatusExpired, StatusCancelled},
	StatusPending:       {StatusPaid, StatusCancelled},
	StatusPaid:          {StatusReviewed, StatusCancelled},
	StatusReviewed:      {StatusCompleted, StatusCancelled},
	StatusCompleted:     {},
	StatusCancelled:     {},
	StatusExpired:       {},
}

// CanTransition reports whether an order may move from one status to
// another. Re-setting the same status is permitted so repeated updates
// stay idempotent.
func CanTransition(from, to OrderStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// StaleLeadStatuses are the statuses the expiry sweep inspects.
func StaleLeadStatuses() []OrderStatus {
	return []OrderStatus{StatusLead, StatusHotLead, StatusNotInterested}
}

type Order struct {
	gorm.Model
	Status        OrderStatus     `gorm:"column:status;type:varchar(20);index;default:'NEW_LEAD';not null"`
	CustomerName  string          `gorm:"column:customer_name;not null"`
	CustomerEmail string          `gorm:"column:customer_email;index;not null"`
	CustomerPhone string          `gorm:"column:customer_phone"`
	Message       string          `gorm:"column:message"`
	Total         decimal.Decimal `gorm:"column:total;type:numeric(12,2);not null"`
	AssignedToID  *uint           `gorm:"column:assigned_to_id;index"`
	AssignedTo    *User           `gorm:"foreignKey:AssignedToID"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots the unit price at submission time so later
// catalog edits never change historical totals.
type OrderItem struct {
	gorm.Model
	OrderID   uint            `gorm:"column:order_id;index;not null"`
	ProductID uint            `gorm:"column:product_id;index;not null"`
	Product   Product         `gorm:"foreignKey:ProductID"`
	Quantity  int             `gorm:"column:quantity;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
}
