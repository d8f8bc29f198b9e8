package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/primebox/storefront/internal/dto"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/model"
	"github.com/primebox/storefront/internal/repository"
	"github.com/primebox/storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductService struct {
	repoProduct  *repository.ProductRepository
	repoCategory *repository.CategoryRepository
}

func NewProductService(repoProduct *repository.ProductRepository, repoCategory *repository.CategoryRepository) *ProductService {
	return &ProductService{
		repoProduct:  repoProduct,
		repoCategory: repoCategory,
	}
}

func productToResponse(product *model.Product) dto.ProductResponse {
	images := make([]dto.ProductImageResponse, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, dto.ProductImageResponse{
			ID:       image.ID,
			FileName: image.FileName,
			Position: image.Position,
		})
	}

	return dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Condition:   product.Condition,
		SizeFt:      product.SizeFt,
		CategoryID:  product.CategoryID,
		Category:    product.Category.Name,
		Price:       product.Price.InexactFloat64(),
		Stock:       product.Stock,
		Featured:    product.Featured,
		Active:      product.Active,
		ViewCount:   product.ViewCount,
		Images:      images,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// GetAll lists products for the panel (activeOnly=false) or the shop
// (activeOnly=true) with filters, search and pagination.
func (s *ProductService) GetAll(ctx context.Context, filter dto.ProductFilter, limit, offset int, search string, activeOnly bool) ([]dto.ProductResponse, int64, int, error) {
	products, total, err := s.repoProduct.GetAll(ctx, filter, limit, offset, search, activeOnly)
	if err != nil {
		return nil, 0, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	pageTotal := int(math.Ceil(float64(total) / float64(limit)))
	res := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		res = append(res, productToResponse(&products[i]))
	}

	return res, total, pageTotal, nil
}

func (s *ProductService) GetFeatured(ctx context.Context, limit int) ([]dto.ProductResponse, error) {
	products, err := s.repoProduct.GetFeatured(ctx, limit)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	res := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		res = append(res, productToResponse(&products[i]))
	}
	return res, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	product, err := s.repoProduct.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := productToResponse(product)
	return &response, nil
}

// GetBySlug returns a product for the public detail page and bumps its
// view counter. A failed counter update never fails the page.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error) {
	product, err := s.repoProduct.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !product.Active {
		return nil, apperrors.ErrProductNotFound
	}

	if err := s.repoProduct.IncrementViewCount(ctx, product.ID); err != nil {
		logger.GetLogger().Warn("Failed to increment view count",
			zap.Uint("product_id", product.ID),
			zap.Error(err))
	} else {
		product.ViewCount++
	}

	response := productToResponse(product)
	return &response, nil
}

func (s *ProductService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	if _, err := s.repoProduct.GetBySlug(ctx, slug); err == nil {
		return nil, apperrors.ErrSlugExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if _, err := s.repoCategory.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	product := &model.Product{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
		Condition:   req.Condition,
		SizeFt:      req.SizeFt,
		CategoryID:  req.CategoryID,
		Price:       decimal.NewFromFloat(req.Price).Round(2),
		Stock:       req.Stock,
		Featured:    req.Featured,
		Active:      true,
	}

	if err := s.repoProduct.Create(ctx, product); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return s.GetByID(ctx, product.ID)
}

func (s *ProductService) Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = strings.TrimSpace(req.Name)
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Condition != "" {
		fields["condition"] = req.Condition
	}
	if req.SizeFt != nil {
		fields["size_ft"] = *req.SizeFt
	}
	if req.CategoryID != nil {
		if _, err := s.repoCategory.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		fields["category_id"] = *req.CategoryID
	}
	if req.Price != nil {
		fields["price"] = decimal.NewFromFloat(*req.Price).Round(2)
	}
	if req.Stock != nil {
		fields["stock"] = *req.Stock
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	if len(fields) > 0 {
		if err := s.repoProduct.Update(ctx, id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProductNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	return s.GetByID(ctx, id)
}

// AddImage attaches a stored image file to a product.
func (s *ProductService) AddImage(ctx context.Context, productID uint, fileName string, position int) error {
	if _, err := s.repoProduct.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	image := &model.ProductImage{
		ProductID: productID,
		FileName:  fileName,
		Position:  position,
	}

	if err := s.repoProduct.AddImage(ctx, image); err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

func (s *ProductService) DeleteImage(ctx context.Context, productID, imageID uint) error {
	if err := s.repoProduct.DeleteImage(ctx, productID, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.repoProduct.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}
