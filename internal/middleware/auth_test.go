package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/model"
	"github.com/varunreddy1024/ledger-backend/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

// ── In-memory repository stub ────────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = uuid.New()
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for username, u := range r.users {
		if u.ID == id {
			delete(r.users, username)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func seedUser(repo *stubUserRepo, username, role string) *model.User {
	u := &model.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	repo.users[username] = u
	return u
}

func protectedRouter(repo *stubUserRepo, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokens := token.NewService(testSecret)
	r := gin.New()
	group := r.Group("/", Authenticate(tokens, repo))
	handlers := gin.HandlersChain{}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		u := GetCurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": u.Username, "role": u.Role})
	})
	group.GET("/protected", handlers...)
	return r
}

func doProtected(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func issue(t *testing.T, username, role string, ttl time.Duration) string {
	t.Helper()
	signed, err := token.NewService(testSecret).Issue(username, role, ttl)
	assert.NoError(t, err)
	return signed
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthenticateMissingHeader(t *testing.T) {
	r := protectedRouter(newStubUserRepo())

	w := doProtected(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	r := protectedRouter(newStubUserRepo())

	w := doProtected(r, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestAuthenticateInvalidToken(t *testing.T) {
	r := protectedRouter(newStubUserRepo())

	w := doProtected(r, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestAuthenticateExpiredToken(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice", model.RoleUser)
	r := protectedRouter(repo)

	w := doProtected(r, "Bearer "+issue(t, "alice", model.RoleUser, -time.Minute))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateDeletedUser(t *testing.T) {
	// Valid token but the subject no longer exists — 401, not 200
	repo := newStubUserRepo()
	r := protectedRouter(repo)

	w := doProtected(r, "Bearer "+issue(t, "ghost", model.RoleAdmin, time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestAuthenticateValidToken(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice", model.RoleUser)
	r := protectedRouter(repo)

	w := doProtected(r, "Bearer "+issue(t, "alice", model.RoleUser, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

// ── RequireRole ──────────────────────────────────────────────────────────────

func TestRequireRoleAllowsAdmin(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "root", model.RoleAdmin)
	r := protectedRouter(repo, model.RoleAdmin)

	w := doProtected(r, "Bearer "+issue(t, "root", model.RoleAdmin, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejectsOthers(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "bob", model.RoleManager)
	seedUser(repo, "carol", model.RoleUser)
	r := protectedRouter(repo, model.RoleAdmin)

	for _, tc := range []struct{ username, role string }{
		{"bob", model.RoleManager},
		{"carol", model.RoleUser},
	} {
		w := doProtected(r, "Bearer "+issue(t, tc.username, tc.role, time.Hour))
		assert.Equal(t, http.StatusForbidden, w.Code, "role %s", tc.role)
		assert.Contains(t, w.Body.String(), "Not enough permissions")
	}
}

func TestRequireRoleUsesLiveRole(t *testing.T) {
	// Token says admin, store says user: the live record wins.
	repo := newStubUserRepo()
	seedUser(repo, "mallory", model.RoleUser)
	r := protectedRouter(repo, model.RoleAdmin)

	w := doProtected(r, "Bearer "+issue(t, "mallory", model.RoleAdmin, time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
