package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/primebox/storefront/internal/dto"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/model"
	"github.com/primebox/storefront/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore is the persistence surface behind staff accounts.
// *repository.UserRepository satisfies it.
type UserStore interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetAll(ctx context.Context, limit, offset int, search string) ([]model.User, int64, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
	IncrementTokenVersion(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	Delete(ctx context.Context, id uint) error
}

type UserService struct {
	users    UserStore
	sessions *SessionService
}

func NewUserService(users UserStore, sessions *SessionService) *UserService {
	return &UserService{
		users:    users,
		sessions: sessions,
	}
}

func userToResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      string(user.Role),
		Active:    user.Active,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// hashPassword hashes password using bcrypt
func (s *UserService) hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

// checkPassword verifies password against hash
func (s *UserService) checkPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// validateEmail checks that an email is not already taken
func (s *UserService) validateEmail(ctx context.Context, email string, excludeID *uint) error {
	existingUser, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email availability: %w", err)
	}

	if excludeID != nil && existingUser.ID == *excludeID {
		return nil
	}

	return apperrors.ErrEmailExists
}

// Login authenticates a staff member and issues a session token carrying
// the current stored token version.
func (s *UserService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !user.Active {
		logger.LogAuth(fmt.Sprint(user.ID), "login", false,
			zap.String("reason", "account disabled"))
		return nil, apperrors.ErrAccountDisabled
	}

	if !s.checkPassword(user.Password, password) {
		logger.LogAuth(fmt.Sprint(user.ID), "login", false,
			zap.String("reason", "bad password"))
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		logger.GetLogger().Error("Failed to issue session token",
			zap.Uint("user_id", user.ID),
			zap.Error(err))
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		// Non-fatal; the session is already issued.
		logger.GetLogger().Warn("Failed to stamp last login",
			zap.Uint("user_id", user.ID),
			zap.Error(err))
	}

	logger.LogAuth(fmt.Sprint(user.ID), "login", true)

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.sessions.TokenTTL().Seconds()),
		User:      userToResponse(user),
	}, nil
}

// VerifySession is the authoritative session check: on top of the
// claims (already signature- and expiry-checked), it loads the user and
// rejects revoked versions and disabled accounts.
func (s *UserService) VerifySession(ctx context.Context, claims *SessionClaims) (*model.User, error) {
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !user.Active {
		return nil, apperrors.ErrAccountDisabled
	}

	if user.TokenVersion != claims.TokenVersion {
		logger.GetLogger().Warn("Session token version mismatch",
			zap.Uint("user_id", user.ID),
			zap.Int("token_version", claims.TokenVersion),
			zap.Int("stored_version", user.TokenVersion))
		return nil, apperrors.ErrSessionRevoked
	}

	return user, nil
}

// RevokeSessions invalidates every outstanding session for a user with
// a single atomic version increment.
func (s *UserService) RevokeSessions(ctx context.Context, userID uint) error {
	if err := s.users.IncrementTokenVersion(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

// Logout revokes all sessions for the user.
func (s *UserService) Logout(ctx context.Context, userID uint) error {
	if err := s.RevokeSessions(ctx, userID); err != nil {
		return err
	}
	logger.LogAuth(fmt.Sprint(userID), "logout", true)
	return nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := userToResponse(user)
	return &response, nil
}

func (s *UserService) GetAll(ctx context.Context, limit, offset int, search string) ([]dto.UserResponse, int64, int, error) {
	users, total, err := s.users.GetAll(ctx, limit, offset, search)
	if err != nil {
		return nil, 0, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	pageTotal := int(math.Ceil(float64(total) / float64(limit)))
	res := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		res = append(res, userToResponse(&users[i]))
	}

	return res, total, pageTotal, nil
}

// CreateUser creates a new staff account with a hashed password.
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validateEmail(ctx, email, nil); err != nil {
		if errors.Is(err, apperrors.ErrEmailExists) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	user := &model.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		Password:     hashedPassword,
		Role:         model.Role(req.Role),
		Active:       true,
		TokenVersion: 1,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := userToResponse(user)
	return &response, nil
}

// UpdateUser updates profile fields; email cannot be changed.
func (s *UserService) UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	fields := map[string]interface{}{}
	if req.FirstName != "" {
		fields["first_name"] = strings.TrimSpace(req.FirstName)
	}
	if req.LastName != "" {
		fields["last_name"] = strings.TrimSpace(req.LastName)
	}
	if req.Phone != "" {
		fields["phone"] = strings.TrimSpace(req.Phone)
	}
	if req.Role != "" {
		fields["role"] = req.Role
	}

	if len(fields) > 0 {
		if err := s.users.Update(ctx, id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	return s.GetByID(ctx, id)
}

// UpdatePassword verifies the current password, stores the new hash and
// revokes every outstanding session for the user.
func (s *UserService) UpdatePassword(ctx context.Context, id uint, req *dto.UpdatePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !s.checkPassword(user.Password, req.CurrentPassword) {
		return apperrors.ErrIncorrectPassword
	}

	hashedPassword, err := s.hashPassword(req.NewPassword)
	if err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.users.UpdatePassword(ctx, id, hashedPassword); err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return s.RevokeSessions(ctx, id)
}

// SetActive toggles the account. Deactivation also revokes sessions so
// a disabled user is locked out immediately.
func (s *UserService) SetActive(ctx context.Context, id uint, active bool) error {
	if err := s.users.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !active {
		return s.RevokeSessions(ctx, id)
	}
	return nil
}

// DeleteUser removes a staff account; users cannot delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, id uint, requestingUserID uint) error {
	if id == requestingUserID {
		return apperrors.ErrSelfDeletion
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}
