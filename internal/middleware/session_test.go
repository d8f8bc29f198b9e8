package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/primebox/storefront/config"
	"github.com/primebox/storefront/internal/constants"
	"github.com/primebox/storefront/internal/model"
	"github.com/primebox/storefront/internal/service"
	"gorm.io/gorm"
)

// stubUserStore implements service.UserStore over a map so the
// middleware tests exercise the real UserService.VerifySession path.
type stubUserStore struct {
	users map[uint]*model.User
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
	if user, ok := s.users[id]; ok {
		user.TokenVersion++
	}
	return nil
}

func (s *stubUserStore) SetActive(ctx context.Context, id uint, active bool) error { return nil }

func (s *stubUserStore) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return nil
}

func (s *stubUserStore) Delete(ctx context.Context, id uint) error { return nil }

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:     "test-secret-key",
		TokenTTL:   time.Hour,
		CookieName: "prime_session",
	}
}

func stubUser(id uint, role model.Role, version int, active bool) *model.User {
	user := &model.User{
		Email:        "staff@primebox.local",
		Role:         role,
		Active:       active,
		TokenVersion: version,
	}
	user.ID = id
	return user
}

// newSessionTestRouter builds a gin engine with the full session stack
// in front of a probe handler that records whether it ran.
func newSessionTestRouter(t *testing.T, store *stubUserStore, paths ...string) (*gin.Engine, *SessionMiddleware, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testSessionConfig()
	sessions := service.NewSessionService(cfg)
	users := service.NewUserService(store, sessions)
	mw := NewSessionMiddleware(sessions, users, cfg)

	reached := false
	engine := gin.New()
	group := engine.Group("/panel")
	group.Use(mw.Gate(), mw.RequireAccount())
	for _, path := range paths {
		group.GET(path, func(c *gin.Context) {
			reached = true
			c.Status(http.StatusOK)
		})
	}

	return engine, mw, &reached
}

func request(t *testing.T, engine *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "prime_session", Value: token})
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func issueToken(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := service.NewSessionService(testSessionConfig()).Issue(user)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	return token
}

func TestSessionMiddleware_AllowsValidSession(t *testing.T) {
	user := stubUser(1, model.RoleAdmin, 1, true)
	store := &stubUserStore{users: map[uint]*model.User{1: user}}
	engine, _, reached := newSessionTestRouter(t, store, "/orders")

	rec := request(t, engine, "/panel/orders", issueToken(t, user))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !*reached {
		t.Error("Expected handler to run")
	}
}

func TestSessionMiddleware_RejectsMissingCookie(t *testing.T) {
	engine, _, reached := newSessionTestRouter(t, &stubUserStore{}, "/orders")

	rec := request(t, engine, "/panel/orders", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
	if *reached {
		t.Error("Expected handler not to run")
	}
}

func TestSessionMiddleware_RejectsTamperedToken(t *testing.T) {
	user := stubUser(1, model.RoleAdmin, 1, true)
	store := &stubUserStore{users: map[uint]*model.User{1: user}}
	engine, _, _ := newSessionTestRouter(t, store, "/orders")

	rec := request(t, engine, "/panel/orders", issueToken(t, user)+"x")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestSessionMiddleware_RejectsRevokedTokenVersion(t *testing.T) {
	user := stubUser(1, model.RoleAdmin, 1, true)
	token := issueToken(t, user)

	// Revocation bumps the stored version; the old token keeps its
	// embedded version and must stop working.
	user.TokenVersion = 2
	store := &stubUserStore{users: map[uint]*model.User{1: user}}
	engine, _, reached := newSessionTestRouter(t, store, "/orders")

	rec := request(t, engine, "/panel/orders", token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for revoked session, got %d", rec.Code)
	}
	if *reached {
		t.Error("Expected handler not to run")
	}

	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "prime_session" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("Expected the session cookie to be cleared")
	}
}

func TestSessionMiddleware_RejectsDisabledAccount(t *testing.T) {
	user := stubUser(1, model.RoleSales, 1, false)
	store := &stubUserStore{users: map[uint]*model.User{1: user}}
	engine, _, _ := newSessionTestRouter(t, store, "/orders")

	rec := request(t, engine, "/panel/orders", issueToken(t, user))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for disabled account, got %d", rec.Code)
	}
}

func TestSessionMiddleware_RejectsDeletedAccount(t *testing.T) {
	user := stubUser(7, model.RoleSales, 1, true)
	engine, _, _ := newSessionTestRouter(t, &stubUserStore{users: map[uint]*model.User{}}, "/orders")

	rec := request(t, engine, "/panel/orders", issueToken(t, user))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for deleted account, got %d", rec.Code)
	}
}

func TestSessionMiddleware_RedirectsSalesFromRestrictedArea(t *testing.T) {
	user := stubUser(1, model.RoleSales, 1, true)
	store := &stubUserStore{users: map[uint]*model.User{1: user}}
	engine, _, reached := newSessionTestRouter(t, store, "/staff", "/orders")

	rec := request(t, engine, "/panel/staff", issueToken(t, user))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303 redirect, got %d", rec.Code)
	}
	if location := rec.Header().Get("Location"); location != constants.PanelDefaultPath {
		t.Errorf("Expected redirect to %s, got %s", constants.PanelDefaultPath, location)
	}
	if *reached {
		t.Error("Expected restricted handler not to run")
	}
}

func TestSessionMiddleware_AdminReachesRestrictedArea(t *testing.T) {
	user := stubUser(1, model.RoleAdmin, 1, true)
	store := &stubUserStore{users: map[uint]*model.User{1: user}}
	engine, _, reached := newSessionTestRouter(t, store, "/staff")

	rec := request(t, engine, "/panel/staff", issueToken(t, user))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !*reached {
		t.Error("Expected handler to run")
	}
}

func TestSessionMiddleware_SalesReachesPermittedArea(t *testing.T) {
	user := stubUser(1, model.RoleSales, 1, true)
	store := &stubUserStore{users: map[uint]*model.User{1: user}}
	engine, _, reached := newSessionTestRouter(t, store, "/orders")

	rec := request(t, engine, "/panel/orders", issueToken(t, user))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !*reached {
		t.Error("Expected handler to run")
	}
}

func TestRestrictedPath(t *testing.T) {
	restricted := []string{
		"/panel/products",
		"/panel/products/5",
		"/panel/categories",
		"/panel/plans/2",
		"/panel/staff",
		"/panel/customers",
	}
	for _, path := range restricted {
		if !restrictedPath(path) {
			t.Errorf("Expected %s to be restricted", path)
		}
	}

	open := []string{
		"/panel/orders",
		"/panel/orders/5/status",
		"/panel/careers",
	}
	for _, path := range open {
		if restrictedPath(path) {
			t.Errorf("Expected %s to be open", path)
		}
	}
}
