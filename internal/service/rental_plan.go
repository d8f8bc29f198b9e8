package service

import (
	"context"
	"errors"
	"strings"

	"github.com/primebox/storefront/internal/dto"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/model"
	"github.com/primebox/storefront/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RentalPlanService struct {
	repoPlan *repository.RentalPlanRepository
}

func NewRentalPlanService(repo *repository.RentalPlanRepository) *RentalPlanService {
	return &RentalPlanService{repoPlan: repo}
}

// planToResponse converts the stored exact price to float at the
// presentation boundary only.
func planToResponse(plan *model.RentalPlan) dto.RentalPlanResponse {
	return dto.RentalPlanResponse{
		ID:           plan.ID,
		Name:         plan.Name,
		Slug:         plan.Slug,
		Description:  plan.Description,
		MonthlyPrice: plan.MonthlyPrice.InexactFloat64(),
		MinMonths:    plan.MinMonths,
		Active:       plan.Active,
		CreatedAt:    plan.CreatedAt,
		UpdatedAt:    plan.UpdatedAt,
	}
}

func (s *RentalPlanService) GetAll(ctx context.Context, activeOnly bool) ([]dto.RentalPlanResponse, error) {
	plans, err := s.repoPlan.GetAll(ctx, activeOnly)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	res := make([]dto.RentalPlanResponse, 0, len(plans))
	for i := range plans {
		res = append(res, planToResponse(&plans[i]))
	}
	return res, nil
}

func (s *RentalPlanService) GetBySlug(ctx context.Context, slug string) (*dto.RentalPlanResponse, error) {
	plan, err := s.repoPlan.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := planToResponse(plan)
	return &response, nil
}

func (s *RentalPlanService) Create(ctx context.Context, req *dto.CreateRentalPlanRequest) (*dto.RentalPlanResponse, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	if _, err := s.repoPlan.GetBySlug(ctx, slug); err == nil {
		return nil, apperrors.ErrSlugExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	minMonths := req.MinMonths
	if minMonths < 1 {
		minMonths = 1
	}

	plan := &model.RentalPlan{
		Name:         strings.TrimSpace(req.Name),
		Slug:         slug,
		Description:  req.Description,
		MonthlyPrice: decimal.NewFromFloat(req.MonthlyPrice).Round(2),
		MinMonths:    minMonths,
		Active:       true,
	}

	if err := s.repoPlan.Create(ctx, plan); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := planToResponse(plan)
	return &response, nil
}

func (s *RentalPlanService) Update(ctx context.Context, id uint, req *dto.UpdateRentalPlanRequest) (*dto.RentalPlanResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = strings.TrimSpace(req.Name)
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.MonthlyPrice != nil {
		fields["monthly_price"] = decimal.NewFromFloat(*req.MonthlyPrice).Round(2)
	}
	if req.MinMonths != nil {
		fields["min_months"] = *req.MinMonths
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	if len(fields) > 0 {
		if err := s.repoPlan.Update(ctx, id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPlanNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	plan, err := s.repoPlan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := planToResponse(plan)
	return &response, nil
}

func (s *RentalPlanService) Delete(ctx context.Context, id uint) error {
	if err := s.repoPlan.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlanNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}
