package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestAuthenticateBearerSchemeIsCaseInsensitive(t *testing.T) {
	const secret = "test-secret"

	token, _, err := utils.IssueToken(secret, uuid.New(), "admin", 1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticate(secret, zap.NewNop())(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"canonical scheme", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"uppercase scheme", "BEARER " + token, http.StatusOK},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"scheme without token", "Bearer", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticate("test-secret", zap.NewNop())(next)

	token, _, err := utils.IssueToken("other-secret", uuid.New(), "admin", 1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
