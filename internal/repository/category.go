package repository

import (
	"context"

	"github.com/primebox/storefront/internal/model"
	"github.com/primebox/storefront/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetAll lists categories. When activeOnly is set, inactive categories
// are filtered out (storefront view).
func (r *CategoryRepository) GetAll(ctx context.Context, activeOnly bool) ([]model.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var categories []model.Category
	query := r.db.WithContext(ctx).Model(&model.Category{}).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Find(&categories).Error; err != nil {
		logger.GetLogger().Error("Failed to fetch categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		logger.GetLogger().Error("Failed to create category",
			zap.String("slug", category.Slug),
			zap.Error(err))
		return err
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
