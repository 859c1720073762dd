package auth

import (
	"context"
	"testing"

	pkgAuth "github.com/insight24/insight-backend/pkg/auth"
	"github.com/insight24/insight-backend/pkg/config"
	"github.com/insight24/insight-backend/pkg/db/models"
	pkgerrors "github.com/insight24/insight-backend/pkg/errors"
	"github.com/insight24/insight-backend/pkg/security"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	user *models.User
	err  error
}

func (s stubUserRepo) FindByUsername(_ context.Context, _ string) (*models.User, error) {
	return s.user, s.err
}

func testService(t *testing.T, repo userRepository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo:  repo,
		JWTConfig: config.JWTConfig{Secret: "secret", Issuer: "insight-api", ExpirationMinutes: 60},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func adminUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{ArgonMemoryKB: 8, ArgonTime: 1, ArgonParallelism: 1, ArgonSaltLen: 8, ArgonKeyLen: 16})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &models.User{Username: "insight", PasswordHash: hash}
}

func TestLoginSuccess(t *testing.T) {
	svc := testService(t, stubUserRepo{user: adminUser(t, "Parol13!!")})

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "insight", Password: "Parol13!!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected bearer token type, got %q", resp.TokenType)
	}

	claims, err := pkgAuth.ParseAccessToken(config.JWTConfig{Secret: "secret", Issuer: "insight-api", ExpirationMinutes: 60}, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Username() != "insight" {
		t.Fatalf("expected subject insight, got %q", claims.Username())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := testService(t, stubUserRepo{user: adminUser(t, "Parol13!!")})

	_, err := svc.Login(context.Background(), LoginRequest{Username: "insight", Password: "nope"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := testService(t, stubUserRepo{err: gorm.ErrRecordNotFound})

	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "x"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if typed := pkgerrors.As(err); typed.Message() != invalidCredentialsMessage {
		t.Fatalf("unknown user must look like wrong password, got %q", typed.Message())
	}
}

func TestLoginBlankInput(t *testing.T) {
	svc := testService(t, stubUserRepo{user: adminUser(t, "Parol13!!")})

	_, err := svc.Login(context.Background(), LoginRequest{Username: "   ", Password: ""})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestNewServiceValidation(t *testing.T) {
	if _, err := NewService(ServiceParams{JWTConfig: config.JWTConfig{Secret: "x"}}); err == nil {
		t.Fatal("expected missing repo to error")
	}
	if _, err := NewService(ServiceParams{UserRepo: stubUserRepo{}}); err == nil {
		t.Fatal("expected missing secret to error")
	}
}
