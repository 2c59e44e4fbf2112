package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func newTestRouter(t *testing.T, jwtService jwt.Service, roleGate func(http.Handler) http.Handler) *chi.Mux {
	t.Helper()

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(AuthRequired(jwtService))
		if roleGate != nil {
			r.Use(roleGate)
		}
		r.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func doRequest(router *chi.Mux, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func accessToken(t *testing.T, jwtService jwt.Service, role user.Role) string {
	t.Helper()

	employeeID := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"
	token, _, err := jwtService.GenerateAccessToken("user-1", "test@example.com", &employeeID, role)
	require.NoError(t, err)
	return token
}

func TestAuthRequired_NoToken(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	router := newTestRouter(t, jwtService, nil)

	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_GarbageToken(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	router := newTestRouter(t, jwtService, nil)

	rec := doRequest(router, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_ValidAccessToken(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	router := newTestRouter(t, jwtService, nil)

	rec := doRequest(router, accessToken(t, jwtService, user.RoleEmployee))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_RejectsRefreshToken(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	router := newTestRouter(t, jwtService, nil)

	// Refresh tokens must not unlock API routes.
	token, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	rec := doRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RevokedToken(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	router := newTestRouter(t, jwtService, nil)

	token := accessToken(t, jwtService, user.RoleEmployee)
	rec := doRequest(router, token)
	require.Equal(t, http.StatusOK, rec.Code)

	jwtService.RevokeToken(token)
	rec = doRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	router := newTestRouter(t, jwtService, AdminOnly)

	rec := doRequest(router, accessToken(t, jwtService, user.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, accessToken(t, jwtService, user.RoleHR))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOrHR(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	router := newTestRouter(t, jwtService, AdminOrHR)

	for _, role := range []user.Role{user.RoleAdmin, user.RoleHR} {
		rec := doRequest(router, accessToken(t, jwtService, role))
		assert.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}

	for _, role := range []user.Role{user.RoleManager, user.RoleEmployee} {
		rec := doRequest(router, accessToken(t, jwtService, role))
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %s", role)
	}
}

func TestManagerOrAbove(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	router := newTestRouter(t, jwtService, ManagerOrAbove)

	for _, role := range []user.Role{user.RoleAdmin, user.RoleHR, user.RoleManager} {
		rec := doRequest(router, accessToken(t, jwtService, role))
		assert.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}

	rec := doRequest(router, accessToken(t, jwtService, user.RoleEmployee))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
