package repository

import (
	"context"

	"github.com/primebox/storefront/internal/model"
	"gorm.io/gorm"
)

type RentalPlanRepository struct {
	db *gorm.DB
}

func NewRentalPlanRepository(db *gorm.DB) *RentalPlanRepository {
	return &RentalPlanRepository{db: db}
}

func (r *RentalPlanRepository) GetByID(ctx context.Context, id uint) (*model.RentalPlan, error) {
	var plan model.RentalPlan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *RentalPlanRepository) GetBySlug(ctx context.Context, slug string) (*model.RentalPlan, error) {
	var plan model.RentalPlan
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *RentalPlanRepository) GetAll(ctx context.Context, activeOnly bool) ([]model.RentalPlan, error) {
	var plans []model.RentalPlan
	query := r.db.WithContext(ctx).Model(&model.RentalPlan{}).Order("monthly_price ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *RentalPlanRepository) Create(ctx context.Context, plan *model.RentalPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *RentalPlanRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.RentalPlan{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RentalPlanRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.RentalPlan{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
