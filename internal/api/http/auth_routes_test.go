package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/spec-kit/fooddelivery-service/internal/api/http"
	"github.com/spec-kit/fooddelivery-service/internal/api/http/handlers"
	"github.com/spec-kit/fooddelivery-service/internal/config"
	"github.com/spec-kit/fooddelivery-service/internal/domain"
	"github.com/spec-kit/fooddelivery-service/internal/observability"
	"github.com/spec-kit/fooddelivery-service/internal/repository"
	"github.com/spec-kit/fooddelivery-service/internal/service"
)

type memoryUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func (m *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := m.users[user.Email]; exists {
		return repository.ErrDuplicate
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	m.users[user.Email] = &stored
	return nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (m *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.users[email]
	return ok, nil
}

func newIssuerApp(t *testing.T) (*fiber.App, *service.AuthService) {
	t.Helper()

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            bcrypt.MinCost,
		},
	}
	authService := service.NewAuthService(cfg, service.AuthDependencies{
		UserRepo: &memoryUserRepo{users: make(map[string]*domain.User)},
	})

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterAuthRoutes(app, httptransport.AuthRouteConfig{
		Health: handlers.NewHealthHandler("auth-service", "test", nil, nil),
		Auth:   handlers.NewAuthHandler(authService),
	})
	return app, authService
}

func postJSON(t *testing.T, app *fiber.App, target string, body any) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", target, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, payload
}

func TestIssuerEndToEnd(t *testing.T) {
	app, authService := newIssuerApp(t)

	status, body := postJSON(t, app, "/auth/registration", fiber.Map{
		"email":    "a@b.com",
		"name":     "Jane",
		"role":     "CUSTOMER",
		"password": "pw",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var created struct {
		Status    int       `json:"status"`
		Message   string    `json:"message"`
		Timestamp time.Time `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, fiber.StatusCreated, created.Status)
	assert.False(t, created.Timestamp.IsZero())

	status, body = postJSON(t, app, "/auth/login", fiber.Map{"email": "a@b.com", "password": "pw"})
	require.Equal(t, fiber.StatusOK, status)

	var login struct {
		Status int `json:"status"`
		Data   struct {
			ID    int64  `json:"id"`
			Role  string `json:"role"`
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &login))
	require.NotEmpty(t, login.Data.Token)
	assert.Equal(t, "CUSTOMER", login.Data.Role)
	assert.NotZero(t, login.Data.ID)

	claims, err := authService.TokenManager().ParseToken(login.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
	assert.Equal(t, login.Data.ID, claims.UserID)
}

func TestIssuerLoginFailures(t *testing.T) {
	app, _ := newIssuerApp(t)

	status, _ := postJSON(t, app, "/auth/registration", fiber.Map{
		"email":    "a@b.com",
		"name":     "Jane",
		"role":     "CUSTOMER",
		"password": "pw",
	})
	require.Equal(t, fiber.StatusCreated, status)

	wrongStatus, wrongBody := postJSON(t, app, "/auth/login", fiber.Map{"email": "a@b.com", "password": "nope"})
	assert.Equal(t, fiber.StatusUnauthorized, wrongStatus)

	unknownStatus, unknownBody := postJSON(t, app, "/auth/login", fiber.Map{"email": "x@y.com", "password": "pw"})
	assert.Equal(t, fiber.StatusUnauthorized, unknownStatus)

	// both failures carry the same envelope message
	var a, b struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(wrongBody, &a))
	require.NoError(t, json.Unmarshal(unknownBody, &b))
	assert.Equal(t, a.Message, b.Message)
}

func TestIssuerRegistrationFailures(t *testing.T) {
	app, _ := newIssuerApp(t)

	status, _ := postJSON(t, app, "/auth/registration", fiber.Map{
		"email":    "a@b.com",
		"name":     "Jane",
		"role":     "CUSTOMER",
		"password": "pw",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = postJSON(t, app, "/auth/registration", fiber.Map{
		"email":    "a@b.com",
		"name":     "Janet",
		"role":     "ADMIN",
		"password": "pw2",
	})
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = postJSON(t, app, "/auth/registration", fiber.Map{
		"email":    "b@b.com",
		"name":     "Janet",
		"role":     "SUPERUSER",
		"password": "pw",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postJSON(t, app, "/auth/registration", fiber.Map{"email": "c@b.com"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}
