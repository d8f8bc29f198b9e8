package repository

import (
	"context"
	"time"

	"github.com/primebox/storefront/internal/dto"
	"github.com/primebox/storefront/internal/model"
	"github.com/primebox/storefront/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("AssignedTo").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetAll lists orders newest-first with items and assigned staff
// attached. An empty status lists every order.
func (r *OrderRepository) GetAll(ctx context.Context, status model.OrderStatus, limit, offset int) ([]model.Order, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		logger.GetLogger().Error("Failed to count orders", zap.Error(err))
		return nil, 0, err
	}

	err := query.
		Preload("Items").
		Preload("Items.Product").
		Preload("AssignedTo").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	if err != nil {
		logger.GetLogger().Error("Failed to fetch orders",
			zap.String("status", string(status)),
			zap.Error(err))
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		logger.GetLogger().Error("Failed to create order",
			zap.String("customer_email", order.CustomerEmail),
			zap.Error(err))
		return err
	}

	logger.GetLogger().Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.String("status", string(order.Status)))
	return nil
}

// UpdateStatus overwrites the order status. Transition legality is
// checked in the service layer before this is called.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to update order status",
			zap.Uint("order_id", id),
			zap.String("status", string(status)),
			zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Assign sets or replaces the staff owner of an order.
func (r *OrderRepository) Assign(ctx context.Context, id uint, staffID uint) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Update("assigned_to_id", staffID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExpireStale flips stale lead-stage orders to EXPIRED in one UPDATE.
// Re-running it over the same rows is a no-op, so concurrent sweeps
// are harmless.
func (r *OrderRepository) ExpireStale(ctx context.Context, statuses []model.OrderStatus, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("status IN ? AND created_at < ?", statuses, olderThan).
		Update("status", model.StatusExpired)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to expire stale leads", zap.Error(result.Error))
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		logger.GetLogger().Info("Stale leads expired",
			zap.Int64("count", result.RowsAffected))
	}
	return result.RowsAffected, nil
}

// Customers aggregates distinct order customers with order counts for
// the panel customer listing.
func (r *OrderRepository) Customers(ctx context.Context, limit, offset int, search string) ([]dto.CustomerResponse, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	base := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("customer_name AS name, customer_email AS email, MAX(customer_phone) AS phone, COUNT(*) AS order_count, MAX(created_at) AS last_order").
		Group("customer_email, customer_name")

	if search != "" {
		searchPattern := "%" + search + "%"
		base = base.Where("customer_name ILIKE ? OR customer_email ILIKE ?", searchPattern, searchPattern)
	}

	var total int64
	if err := r.db.WithContext(ctx).Table("(?) AS customers", base).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []dto.CustomerResponse
	err := base.Order("last_order DESC").Limit(limit).Offset(offset).Scan(&customers).Error
	if err != nil {
		logger.GetLogger().Error("Failed to fetch customers", zap.Error(err))
		return nil, 0, err
	}

	return customers, total, nil
}
