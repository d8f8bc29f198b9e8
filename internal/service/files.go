package service

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/primebox/storefront/config"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/pkg/logger"
	"go.uber.org/zap"
)

// imageContentTypes whitelists servable image extensions.
var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// FileService stores uploads under generated names and resolves stored
// files for serving. Client-supplied names never touch the filesystem.
type FileService struct {
	imagesDir  string
	resumesDir string
	maxSize    int64
}

func NewFileService(cfg config.UploadsConfig) (*FileService, error) {
	for _, dir := range []string{cfg.ImagesDir, cfg.ResumesDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	return &FileService{
		imagesDir:  cfg.ImagesDir,
		resumesDir: cfg.ResumesDir,
		maxSize:    cfg.MaxSizeBytes,
	}, nil
}

// ValidateImageName rejects anything that is not a plain file name with
// a whitelisted image extension. Path traversal sequences and
// separators are invalid, not merely unknown.
func ValidateImageName(name string) (string, error) {
	if name == "" {
		return "", apperrors.ErrInvalidFilename
	}
	if strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) ||
		strings.ContainsRune(name, 0) {
		return "", apperrors.ErrInvalidFilename
	}

	contentType, ok := imageContentTypes[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return "", apperrors.ErrInvalidFilename
	}

	return contentType, nil
}

// ResolveImage validates a requested file name and returns the path and
// content type for serving.
func (s *FileService) ResolveImage(name string) (string, string, error) {
	contentType, err := ValidateImageName(name)
	if err != nil {
		return "", "", err
	}

	path := filepath.Join(s.imagesDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", "", apperrors.ErrFileNotFound
	}

	return path, contentType, nil
}

// SaveImage stores an uploaded image under a generated name and returns
// that name.
func (s *FileService) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > s.maxSize {
		return "", apperrors.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := imageContentTypes[ext]; !ok {
		return "", apperrors.ErrUnsupportedFile
	}

	storedName := uuid.NewString() + ext
	if err := s.saveTo(fileHeader, filepath.Join(s.imagesDir, storedName)); err != nil {
		return "", err
	}

	logger.GetLogger().Info("Image stored",
		zap.String("file", storedName),
		zap.Int64("size", fileHeader.Size))
	return storedName, nil
}

// SaveResume stores an uploaded resume. Only PDFs are accepted.
func (s *FileService) SaveResume(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > s.maxSize {
		return "", apperrors.ErrFileTooLarge
	}

	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".pdf" {
		return "", apperrors.ErrUnsupportedFile
	}
	if declared := fileHeader.Header.Get("Content-Type"); declared != "" && declared != "application/pdf" {
		return "", apperrors.ErrUnsupportedFile
	}

	storedName := uuid.NewString() + ".pdf"
	if err := s.saveTo(fileHeader, filepath.Join(s.resumesDir, storedName)); err != nil {
		return "", err
	}

	logger.GetLogger().Info("Resume stored",
		zap.String("file", storedName),
		zap.Int64("size", fileHeader.Size))
	return storedName, nil
}

func (s *FileService) saveTo(fileHeader *multipart.FileHeader, path string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return nil
}
