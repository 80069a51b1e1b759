package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/spaceshare/rental-api/internal/core/domain"
	"github.com/spaceshare/rental-api/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newUserContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Name != "Alice" || input.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.ActorRole != "" {
				t.Fatalf("public route must not carry an actor role, got %q", input.ActorRole)
			}
			return &domain.User{ID: "user_1", Name: input.Name, Email: input.Email, Role: domain.RoleUser}, nil
		},
	}
	handler := NewUserHandler(stub)

	body := `{"name":"Alice","email":"alice@example.com","password":"supersecret"}`
	c, rec := newUserContext(t, "/api/users", body)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "alice@example.com" || resp["role"] != "user" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["password"]; ok {
		t.Fatalf("password must never appear in the response")
	}
}

func TestUserHandler_Register_ForwardsActorRole(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.ActorRole != domain.RoleSuperAdmin {
				t.Fatalf("expected super_admin actor role, got %q", input.ActorRole)
			}
			return &domain.User{ID: "user_2", Name: input.Name, Email: input.Email, Role: input.Role}, nil
		},
	}
	handler := NewUserHandler(stub)

	body := `{"name":"Bob","email":"bob@example.com","password":"supersecret","role":"admin"}`
	c, rec := newUserContext(t, "/api/admin/users", body)
	c.Set("role", domain.RoleSuperAdmin)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Register_ShortPasswordRejected(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	body := `{"name":"Alice","email":"alice@example.com","password":"short"}`
	c, _ := newUserContext(t, "/api/users", body)

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 http error, got %v", err)
	}
}

func TestUserHandler_Register_DuplicateEmailPropagates(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewUserHandler(stub)

	body := `{"name":"Alice","email":"alice@example.com","password":"supersecret"}`
	c, _ := newUserContext(t, "/api/users", body)

	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected user exists error, got %v", err)
	}
}

func TestUserHandler_Login_Success(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "supersecret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: "user_1", Email: email, Role: domain.RoleUser}, nil
		},
	}
	handler := NewUserHandler(stub)

	body := `{"email":"alice@example.com","password":"supersecret"}`
	c, rec := newUserContext(t, "/api/users/login", body)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Login_BadCredentialsPropagate(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewUserHandler(stub)

	body := `{"email":"alice@example.com","password":"wrong"}`
	c, _ := newUserContext(t, "/api/users/login", body)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}
