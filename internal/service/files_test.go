package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/primebox/storefront/config"
	apperrors "github.com/primebox/storefront/internal/errors"
)

func TestValidateImageName(t *testing.T) {
	valid := map[string]string{
		"photo.jpg":  "image/jpeg",
		"photo.JPEG": "image/jpeg",
		"banner.png": "image/png",
		"anim.gif":   "image/gif",
		"hero.webp":  "image/webp",
	}
	for name, wantType := range valid {
		contentType, err := ValidateImageName(name)
		if err != nil {
			t.Errorf("ValidateImageName(%q) failed: %v", name, err)
			continue
		}
		if contentType != wantType {
			t.Errorf("ValidateImageName(%q) = %s, want %s", name, contentType, wantType)
		}
	}

	invalid := []string{
		"",
		"../../etc/passwd",
		"..\\windows\\system32\\config",
		"dir/photo.jpg",
		"photo.jpg/..",
		"photo.sh",
		"photo",
		"photo.jpg\x00.sh",
		"photo.svg",
	}
	for _, name := range invalid {
		if _, err := ValidateImageName(name); !errors.Is(err, apperrors.ErrInvalidFilename) {
			t.Errorf("ValidateImageName(%q) = %v, want ErrInvalidFilename", name, err)
		}
	}
}

func newTestFileService(t *testing.T) *FileService {
	t.Helper()
	base := t.TempDir()
	svc, err := NewFileService(config.UploadsConfig{
		ImagesDir:    filepath.Join(base, "images"),
		ResumesDir:   filepath.Join(base, "resumes"),
		MaxSizeBytes: 1 << 20,
	})
	if err != nil {
		t.Fatalf("NewFileService failed: %v", err)
	}
	return svc
}

func TestFileService_ResolveImage(t *testing.T) {
	svc := newTestFileService(t)

	stored := filepath.Join(svc.imagesDir, "existing.png")
	if err := os.WriteFile(stored, []byte("png-bytes"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	path, contentType, err := svc.ResolveImage("existing.png")
	if err != nil {
		t.Fatalf("ResolveImage failed: %v", err)
	}
	if path != stored {
		t.Errorf("Expected path %s, got %s", stored, path)
	}
	if contentType != "image/png" {
		t.Errorf("Expected image/png, got %s", contentType)
	}
}

func TestFileService_ResolveImageMissingFile(t *testing.T) {
	svc := newTestFileService(t)

	if _, _, err := svc.ResolveImage("missing.png"); !errors.Is(err, apperrors.ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestFileService_ResolveImageRejectsTraversal(t *testing.T) {
	svc := newTestFileService(t)

	// A file outside the images dir must stay unreachable even though
	// it exists.
	secret := filepath.Join(filepath.Dir(svc.imagesDir), "secret.png")
	if err := os.WriteFile(secret, []byte("secret"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	for _, name := range []string{"../secret.png", "..%2Fsecret.png"} {
		if _, _, err := svc.ResolveImage(name); !errors.Is(err, apperrors.ErrInvalidFilename) {
			t.Errorf("ResolveImage(%q) = %v, want ErrInvalidFilename", name, err)
		}
	}
}
