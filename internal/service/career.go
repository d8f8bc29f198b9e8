package service

import (
	"context"
	"errors"
	"math"
	"mime/multipart"
	"strings"

	"github.com/primebox/storefront/internal/dto"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/model"
	"github.com/primebox/storefront/internal/repository"
	"gorm.io/gorm"
)

type CareerService struct {
	repoCareer *repository.CareerRepository
	files      *FileService
}

func NewCareerService(repo *repository.CareerRepository, files *FileService) *CareerService {
	return &CareerService{
		repoCareer: repo,
		files:      files,
	}
}

func applicationToResponse(application *model.CareerApplication) dto.CareerApplicationResponse {
	return dto.CareerApplicationResponse{
		ID:         application.ID,
		FullName:   application.FullName,
		Email:      application.Email,
		Phone:      application.Phone,
		ResumeFile: application.ResumeFile,
		Note:       application.Note,
		Reviewed:   application.Reviewed,
		CreatedAt:  application.CreatedAt,
	}
}

// Apply stores the resume under a generated name and records the
// application metadata.
func (s *CareerService) Apply(ctx context.Context, req *dto.CareerApplicationRequest, resume *multipart.FileHeader) (*dto.CareerApplicationResponse, error) {
	storedName, err := s.files.SaveResume(resume)
	if err != nil {
		return nil, err
	}

	application := &model.CareerApplication{
		FullName:   strings.TrimSpace(req.FullName),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      strings.TrimSpace(req.Phone),
		ResumeFile: storedName,
		Note:       req.Note,
	}

	if err := s.repoCareer.Create(ctx, application); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := applicationToResponse(application)
	return &response, nil
}

func (s *CareerService) GetAll(ctx context.Context, limit, offset int) ([]dto.CareerApplicationResponse, int64, int, error) {
	applications, total, err := s.repoCareer.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	pageTotal := int(math.Ceil(float64(total) / float64(limit)))
	res := make([]dto.CareerApplicationResponse, 0, len(applications))
	for i := range applications {
		res = append(res, applicationToResponse(&applications[i]))
	}

	return res, total, pageTotal, nil
}

func (s *CareerService) SetReviewed(ctx context.Context, id uint, reviewed bool) error {
	if err := s.repoCareer.SetReviewed(ctx, id, reviewed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrApplicationMissing
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}
