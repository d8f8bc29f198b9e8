package repository

import (
	"context"

	"github.com/primebox/storefront/internal/model"
	"github.com/primebox/storefront/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CareerRepository struct {
	db *gorm.DB
}

func NewCareerRepository(db *gorm.DB) *CareerRepository {
	return &CareerRepository{db: db}
}

func (r *CareerRepository) GetByID(ctx context.Context, id uint) (*model.CareerApplication, error) {
	var application model.CareerApplication
	if err := r.db.WithContext(ctx).First(&application, id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *CareerRepository) GetAll(ctx context.Context, limit, offset int) ([]model.CareerApplication, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	var applications []model.CareerApplication
	var total int64

	query := r.db.WithContext(ctx).Model(&model.CareerApplication{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&applications).Error
	if err != nil {
		logger.GetLogger().Error("Failed to fetch career applications", zap.Error(err))
		return nil, 0, err
	}

	return applications, total, nil
}

func (r *CareerRepository) Create(ctx context.Context, application *model.CareerApplication) error {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		logger.GetLogger().Error("Failed to record career application",
			zap.String("email", application.Email),
			zap.Error(err))
		return err
	}

	logger.GetLogger().Info("Career application recorded",
		zap.Uint("application_id", application.ID))
	return nil
}

func (r *CareerRepository) SetReviewed(ctx context.Context, id uint, reviewed bool) error {
	result := r.db.WithContext(ctx).Model(&model.CareerApplication{}).Where("id = ?", id).Update("reviewed", reviewed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
