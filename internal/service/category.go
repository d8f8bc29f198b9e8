package service

import (
	"context"
	"errors"
	"strings"

	"github.com/primebox/storefront/internal/dto"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/model"
	"github.com/primebox/storefront/internal/repository"
	"gorm.io/gorm"
)

type CategoryService struct {
	repoCategory *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repoCategory: repo}
}

func categoryToResponse(category *model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		ImageFile:   category.ImageFile,
		Active:      category.Active,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func (s *CategoryService) validateSlug(ctx context.Context, slug string) error {
	_, err := s.repoCategory.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return apperrors.ErrSlugExists
}

func (s *CategoryService) GetAll(ctx context.Context, activeOnly bool) ([]dto.CategoryResponse, error) {
	categories, err := s.repoCategory.GetAll(ctx, activeOnly)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	res := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		res = append(res, categoryToResponse(&categories[i]))
	}
	return res, nil
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*dto.CategoryResponse, error) {
	category, err := s.repoCategory.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := categoryToResponse(category)
	return &response, nil
}

func (s *CategoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	if err := s.validateSlug(ctx, slug); err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
		Active:      true,
	}

	if err := s.repoCategory.Create(ctx, category); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := categoryToResponse(category)
	return &response, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = strings.TrimSpace(req.Name)
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	if len(fields) > 0 {
		if err := s.repoCategory.Update(ctx, id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	category, err := s.repoCategory.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := categoryToResponse(category)
	return &response, nil
}

// SetImage records the stored image file name for a category.
func (s *CategoryService) SetImage(ctx context.Context, id uint, fileName string) error {
	if err := s.repoCategory.Update(ctx, id, map[string]interface{}{"image_file": fileName}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if err := s.repoCategory.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}
