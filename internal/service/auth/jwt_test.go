package auth_test

import (
	"errors"
	"testing"
	"time"

	"CourseForge/internal/app_errors"
	"CourseForge/internal/models"
	"CourseForge/internal/service/auth"

	"github.com/google/uuid"
)

func testManager(accessTTL, refreshTTL time.Duration) *auth.JWTManager {
	return auth.NewJWTManager("test-secret-key", "courseforge", accessTTL, refreshTTL)
}

func TestGenerateTokenPair_RoundTrip(t *testing.T) {
	m := testManager(time.Minute, time.Hour)
	userID := uuid.New()
	roles := []string{models.StudentRole}

	pair, err := m.GenerateTokenPair(userID, roles)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if pair.AccessToken.Raw == "" || pair.RefreshToken.Raw == "" {
		t.Fatal("expected raw token strings on both tokens")
	}

	claims, err := m.AccessClaims(pair.AccessToken.Raw)
	if err != nil {
		t.Fatalf("AccessClaims: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID, claims.UserID)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != models.StudentRole {
		t.Errorf("unexpected roles: %v", claims.Roles)
	}
}

func TestTokenType(t *testing.T) {
	m := testManager(time.Minute, time.Hour)

	pair, err := m.GenerateTokenPair(uuid.New(), nil)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if !m.TokenType(pair.AccessToken, auth.AccessTokenType) {
		t.Error("access token not recognized as access")
	}
	if m.TokenType(pair.AccessToken, auth.RefreshTokenType) {
		t.Error("access token must not pass as refresh")
	}
	if !m.TokenType(pair.RefreshToken, auth.RefreshTokenType) {
		t.Error("refresh token not recognized as refresh")
	}
}

func TestAccessClaims_RejectsRefreshToken(t *testing.T) {
	m := testManager(time.Minute, time.Hour)

	pair, err := m.GenerateTokenPair(uuid.New(), nil)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if _, err := m.AccessClaims(pair.RefreshToken.Raw); err == nil {
		t.Fatal("expected a refresh token to be rejected as access claims")
	}
}

func TestParse_ExpiredToken(t *testing.T) {
	m := testManager(-time.Minute, time.Hour)

	pair, err := m.GenerateTokenPair(uuid.New(), nil)
	if err == nil {
		_, parseErr := m.Parse(pair.AccessToken.Raw)
		t.Fatalf("expected expired token generation or parse to fail, parse err: %v", parseErr)
	}
	if !errors.Is(err, app_errors.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParse_WrongKey(t *testing.T) {
	m := testManager(time.Minute, time.Hour)
	other := auth.NewJWTManager("another-secret", "courseforge", time.Minute, time.Hour)

	pair, err := m.GenerateTokenPair(uuid.New(), nil)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if _, err := other.Parse(pair.AccessToken.Raw); err == nil {
		t.Fatal("expected a token signed with a different key to be rejected")
	}
}
