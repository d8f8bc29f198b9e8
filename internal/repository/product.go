package repository

import (
	"context"

	"github.com/primebox/storefront/internal/dto"
	"github.com/primebox/storefront/internal/model"
	"github.com/primebox/storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Category").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Category").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetAll lists products with shop filters and pagination. activeOnly is
// set on the storefront path; the panel sees everything.
func (r *ProductRepository) GetAll(ctx context.Context, filter dto.ProductFilter, limit, offset int, search string, activeOnly bool) ([]model.Product, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	var products []model.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Product{})

	if activeOnly {
		query = query.Where("products.active = ?", true)
	}
	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Condition != "" {
		query = query.Where("products.condition = ?", filter.Condition)
	}
	if filter.SizeFt > 0 {
		query = query.Where("products.size_ft = ?", filter.SizeFt)
	}
	if filter.PriceMin > 0 {
		query = query.Where("products.price >= ?", decimal.NewFromFloat(filter.PriceMin))
	}
	if filter.PriceMax > 0 {
		query = query.Where("products.price <= ?", decimal.NewFromFloat(filter.PriceMax))
	}
	if filter.FeaturedOnly {
		query = query.Where("products.featured = ?", true)
	}
	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("products.name ILIKE ? OR products.description ILIKE ?",
			searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		logger.GetLogger().Error("Failed to count products", zap.Error(err))
		return nil, 0, err
	}

	err := query.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Category").
		Order("products.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&products).Error
	if err != nil {
		logger.GetLogger().Error("Failed to fetch products",
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Error(err))
		return nil, 0, err
	}

	return products, total, nil
}

// GetFeatured returns active featured products for the home page.
func (r *ProductRepository) GetFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("active = ? AND featured = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		logger.GetLogger().Error("Failed to create product",
			zap.String("slug", product.Slug),
			zap.Error(err))
		return err
	}

	logger.GetLogger().Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("slug", product.Slug))
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to update product",
			zap.Uint("product_id", id),
			zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViewCount bumps the view counter in a single statement,
// relying on the database for atomicity.
func (r *ProductRepository) IncrementViewCount(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *ProductRepository) AddImage(ctx context.Context, image *model.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *ProductRepository) DeleteImage(ctx context.Context, productID, imageID uint) error {
	result := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductImage{}, imageID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.GetLogger().Info("Product deleted", zap.Uint("product_id", id))
	return nil
}
