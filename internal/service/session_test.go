package service

import (
	"strings"
	"testing"
	"time"

	"github.com/primebox/storefront/config"
	"github.com/primebox/storefront/internal/model"
)

func testSessionService(ttl time.Duration) *SessionService {
	return NewSessionService(config.SessionConfig{
		Secret:   "test-secret-key",
		TokenTTL: ttl,
	})
}

func testUser() *model.User {
	user := &model.User{
		Email:        "sales@primebox.local",
		Role:         model.RoleSales,
		Active:       true,
		TokenVersion: 3,
	}
	user.ID = 42
	return user
}

func TestSessionService_IssueAndVerify(t *testing.T) {
	svc := testSessionService(time.Hour)
	user := testUser()

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if claims.UserID != user.ID {
		t.Errorf("Expected user ID %d, got %d", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("Expected email %s, got %s", user.Email, claims.Email)
	}
	if claims.Role != model.RoleSales {
		t.Errorf("Expected role %s, got %s", model.RoleSales, claims.Role)
	}
	if claims.TokenVersion != user.TokenVersion {
		t.Errorf("Expected token version %d, got %d", user.TokenVersion, claims.TokenVersion)
	}
}

func TestSessionService_VerifyRejectsExpiredToken(t *testing.T) {
	svc := testSessionService(-time.Minute)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Error("Expected expired token to be rejected")
	}
}

func TestSessionService_VerifyRejectsTamperedToken(t *testing.T) {
	svc := testSessionService(time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("Expected 3 token segments, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	if _, err := svc.Verify(tampered); err == nil {
		t.Error("Expected tampered signature to be rejected")
	}
}

func TestSessionService_VerifyRejectsWrongSecret(t *testing.T) {
	issuer := testSessionService(time.Hour)
	verifier := NewSessionService(config.SessionConfig{
		Secret:   "a-different-secret",
		TokenTTL: time.Hour,
	})

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("Expected token signed with another secret to be rejected")
	}
}

func TestSessionService_VerifyRejectsGarbage(t *testing.T) {
	svc := testSessionService(time.Hour)

	if _, err := svc.Verify("not-a-token"); err == nil {
		t.Error("Expected malformed token to be rejected")
	}
}
