package service

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/model"
	"gorm.io/gorm"
)

type stubUserStore struct {
	users map[uint]*model.User
}

func newStubUserStore(users ...*model.User) *stubUserStore {
	store := &stubUserStore{users: make(map[uint]*model.User)}
	for _, user := range users {
		store.users[user.ID] = user
	}
	return store
}

func (s *stubUserStore) GetByID(ctx context.Context, id uint) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserStore) GetAll(ctx context.Context, limit, offset int, search string) ([]model.User, int64, error) {
	return nil, 0, nil
}

func (s *stubUserStore) Create(ctx context.Context, user *model.User) error { return nil }

func (s *stubUserStore) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return nil
}

func (s *stubUserStore) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	return nil
}

func (s *stubUserStore) IncrementTokenVersion(ctx context.Context, id uint) error {
	user, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.TokenVersion++
	return nil
}

func (s *stubUserStore) SetActive(ctx context.Context, id uint, active bool) error { return nil }

func (s *stubUserStore) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return nil
}

func (s *stubUserStore) Delete(ctx context.Context, id uint) error { return nil }

func newTestUserService(store *stubUserStore) *UserService {
	return NewUserService(store, testSessionService(time.Hour))
}

func claimsFor(user *model.User) *SessionClaims {
	return &SessionClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	}
}

func TestUserService_VerifySession(t *testing.T) {
	user := testUser()
	svc := newTestUserService(newStubUserStore(user))

	got, err := svc.VerifySession(context.Background(), claimsFor(user))
	if err != nil {
		t.Fatalf("VerifySession failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("Expected user %d, got %d", user.ID, got.ID)
	}
}

func TestUserService_VerifySessionRejectsRevokedVersion(t *testing.T) {
	user := testUser()
	claims := claimsFor(user)
	svc := newTestUserService(newStubUserStore(user))

	// Revocation bumps the stored version; claims carrying the old
	// version must stop passing the authoritative check.
	if err := svc.RevokeSessions(context.Background(), user.ID); err != nil {
		t.Fatalf("RevokeSessions failed: %v", err)
	}

	_, err := svc.VerifySession(context.Background(), claims)
	if !errors.Is(err, apperrors.ErrSessionRevoked) {
		t.Errorf("Expected ErrSessionRevoked, got %v", err)
	}
}

func TestUserService_VerifySessionRejectsDisabledAccount(t *testing.T) {
	user := testUser()
	user.Active = false
	svc := newTestUserService(newStubUserStore(user))

	_, err := svc.VerifySession(context.Background(), claimsFor(user))
	if !errors.Is(err, apperrors.ErrAccountDisabled) {
		t.Errorf("Expected ErrAccountDisabled, got %v", err)
	}
}

func TestUserService_VerifySessionRejectsMissingUser(t *testing.T) {
	user := testUser()
	svc := newTestUserService(newStubUserStore())

	_, err := svc.VerifySession(context.Background(), claimsFor(user))
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized, got %v", err)
	}
}

func TestUserService_RevokeSessionsMissingUser(t *testing.T) {
	svc := newTestUserService(newStubUserStore())

	err := svc.RevokeSessions(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}
