package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/application/adapter"
)

// stubTokenService accepts a single hard-coded access token.
type stubTokenService struct {
	validToken string
	userID     uuid.UUID
	username   string
}

func (s *stubTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, username string) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{AccessToken: s.validToken, RefreshToken: "refresh"}, nil
}

func (s *stubTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if token != s.validToken {
		return nil, errors.New("invalid token")
	}
	return &adapter.TokenClaims{UserID: s.userID, Username: s.username}, nil
}

func (s *stubTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return nil
}

func (s *stubTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return false, nil
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *stubTokenService) {
	t.Helper()

	svc := &stubTokenService{
		validToken: "good-token",
		userID:     uuid.New(),
		username:   "alice",
	}

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	m := NewAuthMiddleware(svc)
	engine.GET("/protected", m.Authenticate(), func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})

	return engine, svc
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid bearer token", "Bearer good-token", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"unknown token", "Bearer bad-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := setupAuthRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}

	t.Run("exposes the authenticated user to handlers", func(t *testing.T) {
		engine, svc := setupAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		want := `"user_id":"` + svc.userID.String() + `"`
		if body := w.Body.String(); !strings.Contains(body, want) {
			t.Errorf("body %q does not contain %q", body, want)
		}
	})
}
