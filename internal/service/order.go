package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/primebox/storefront/internal/dto"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/model"
	"github.com/primebox/storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderStore is the persistence surface the order lifecycle needs.
// *repository.OrderRepository satisfies it.
type OrderStore interface {
	GetByID(ctx context.Context, id uint) (*model.Order, error)
	GetAll(ctx context.Context, status model.OrderStatus, limit, offset int) ([]model.Order, int64, error)
	Create(ctx context.Context, order *model.Order) error
	UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error
	Assign(ctx context.Context, id uint, staffID uint) error
	ExpireStale(ctx context.Context, statuses []model.OrderStatus, olderThan time.Time) (int64, error)
	Customers(ctx context.Context, limit, offset int, search string) ([]dto.CustomerResponse, int64, error)
}

// ProductFinder resolves products for price snapshots.
// *repository.ProductRepository satisfies it.
type ProductFinder interface {
	GetByID(ctx context.Context, id uint) (*model.Product, error)
}

type OrderService struct {
	orders     OrderStore
	products   ProductFinder
	leadMaxAge time.Duration
}

func NewOrderService(orders OrderStore, products ProductFinder, leadMaxAge time.Duration) *OrderService {
	return &OrderService{
		orders:     orders,
		products:   products,
		leadMaxAge: leadMaxAge,
	}
}

func orderToResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.InexactFloat64(),
		})
	}

	response := dto.OrderResponse{
		ID:            order.ID,
		Status:        string(order.Status),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Message:       order.Message,
		Total:         order.Total.InexactFloat64(),
		Items:         items,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}

	if order.AssignedTo != nil {
		assigned := userToResponse(order.AssignedTo)
		response.AssignedTo = &assigned
	}

	return response
}

// buildItems resolves requested products and snapshots their current
// prices. Totals stay in exact decimal; nothing here touches floats.
func (s *OrderService) buildItems(ctx context.Context, reqItems []dto.OrderItemRequest) ([]model.OrderItem, decimal.Decimal, error) {
	items := make([]model.OrderItem, 0, len(reqItems))
	total := decimal.Zero

	for _, reqItem := range reqItems {
		product, err := s.products.GetByID(ctx, reqItem.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, decimal.Zero, apperrors.ErrProductNotFound
			}
			return nil, decimal.Zero, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		if !product.Active {
			return nil, decimal.Zero, apperrors.ErrProductNotFound
		}

		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Quantity:  reqItem.Quantity,
			UnitPrice: product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(reqItem.Quantity))))
	}

	return items, total, nil
}

// CreateQuote records a storefront inquiry as a NEW_LEAD order.
func (s *OrderService) CreateQuote(ctx context.Context, req *dto.QuoteRequest) (*dto.OrderResponse, error) {
	items, total, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		Status:        model.StatusNewLead,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Message:       req.Message,
		Total:         total,
		Items:         items,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := orderToResponse(order)
	return &response, nil
}

// CreateCheckout records a storefront purchase as a PENDING order.
func (s *OrderService) CreateCheckout(ctx context.Context, req *dto.CheckoutRequest) (*dto.OrderResponse, error) {
	items, total, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		Status:        model.StatusPending,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Total:         total,
		Items:         items,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := orderToResponse(order)
	return &response, nil
}

func (s *OrderService) GetByID(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := orderToResponse(order)
	return &response, nil
}

// List returns orders newest-first, optionally filtered by status.
// Listing a lead-stage view first runs the expiry sweep, so stale leads
// age out as a side effect of reading; a sweep failure only logs.
func (s *OrderService) List(ctx context.Context, status string, limit, offset int) ([]dto.OrderResponse, int64, int, error) {
	var orderStatus model.OrderStatus
	if status != "" {
		orderStatus = model.OrderStatus(status)
		if !orderStatus.Valid() {
			return nil, 0, 0, apperrors.ErrInvalidStatus
		}
	}

	if status == "" || isStaleLeadStatus(orderStatus) {
		if _, err := s.ExpireStaleLeads(ctx); err != nil {
			logger.GetLogger().Warn("Lead expiry sweep failed", zap.Error(err))
		}
	}

	orders, total, err := s.orders.GetAll(ctx, orderStatus, limit, offset)
	if err != nil {
		return nil, 0, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	pageTotal := int(math.Ceil(float64(total) / float64(limit)))
	res := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		res = append(res, orderToResponse(&orders[i]))
	}

	return res, total, pageTotal, nil
}

func isStaleLeadStatus(status model.OrderStatus) bool {
	for _, s := range model.StaleLeadStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// SetStatus moves an order through the funnel. Illegal moves are
// rejected with ErrIllegalTransition; re-setting the current status is
// an accepted no-op.
func (s *OrderService) SetStatus(ctx context.Context, id uint, newStatus string, actingUserID uint) (*dto.OrderResponse, error) {
	status := model.OrderStatus(newStatus)
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !model.CanTransition(order.Status, status) {
		logger.GetLogger().Warn("Rejected order status transition",
			zap.Uint("order_id", id),
			zap.String("from", string(order.Status)),
			zap.String("to", string(status)),
			zap.Uint("acting_user_id", actingUserID))
		return nil, apperrors.ErrIllegalTransition
	}

	if order.Status != status {
		if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		logger.GetLogger().Info("Order status changed",
			zap.Uint("order_id", id),
			zap.String("from", string(order.Status)),
			zap.String("to", string(status)),
			zap.Uint("acting_user_id", actingUserID))
		order.Status = status
	}

	response := orderToResponse(order)
	return &response, nil
}

// Assign sets the staff owner of an order.
func (s *OrderService) Assign(ctx context.Context, id uint, staffID uint) error {
	if err := s.orders.Assign(ctx, id, staffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrderNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

// ExpireStaleLeads flips lead-stage orders older than the configured
// threshold to EXPIRED. The update is idempotent, so overlapping sweeps
// from concurrent requests are harmless.
func (s *OrderService) ExpireStaleLeads(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.leadMaxAge)
	return s.orders.ExpireStale(ctx, model.StaleLeadStatuses(), cutoff)
}

// ListCustomers aggregates order customers for the panel.
func (s *OrderService) ListCustomers(ctx context.Context, limit, offset int, search string) ([]dto.CustomerResponse, int64, int, error) {
	customers, total, err := s.orders.Customers(ctx, limit, offset, search)
	if err != nil {
		return nil, 0, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	pageTotal := int(math.Ceil(float64(total) / float64(limit)))
	return customers, total, pageTotal, nil
}
