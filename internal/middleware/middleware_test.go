package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mohammad516/lc-website/internal/auth"
	"github.com/mohammad516/lc-website/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := logger.RequestIDFrom(r.Context())
		assert.NotEmpty(t, rid, "Request ID should be present in context")
	})

	handler := Logging(nextHandler)

	t.Run("Generates ID when missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Preserves existing ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Request-ID", "test-id-123")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "test-id-123", w.Header().Get("X-Request-ID"))
	})
}

func TestAdminOnly(t *testing.T) {
	t.Run("Missing Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/orders", nil)
		w := httptest.NewRecorder()

		AdminOnly(http.NotFoundHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		req := httptest.NewRequest("GET", "/api/admin/orders", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		w := httptest.NewRecorder()

		AdminOnly(http.NotFoundHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid Admin Token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		token, err := auth.GenerateJWT("owner@lcorganic.com", auth.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/admin/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, "owner@lcorganic.com", claims.Email)
			w.WriteHeader(http.StatusOK)
		})

		AdminOnly(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Non Admin Role", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		token, err := auth.GenerateJWT("someone@example.com", "CUSTOMER")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/admin/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		AdminOnly(http.NotFoundHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("Strict tier throttles checkout", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})
		handler := RateLimit(next)

		var lastCode int
		for i := 0; i < burstStrict+2; i++ {
			req := httptest.NewRequest("POST", "/api/orders", nil)
			req.RemoteAddr = "10.1.2.3:5000"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			lastCode = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("General tier allows browsing burst", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		handler := RateLimit(next)

		for i := 0; i < burstStrict+2; i++ {
			req := httptest.NewRequest("GET", "/api/products", nil)
			req.RemoteAddr = "10.9.8.7:5000"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}
