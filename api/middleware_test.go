package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio-site/backend/auth"
)

func testGuard(t *testing.T) sessionMiddleware {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	gate := auth.NewGate(auth.Admin{
		ID:           auth.AdminID,
		Username:     testAdminUser,
		PasswordHash: string(hash),
		Role:         auth.RoleAdmin,
	}, []byte("test-secret"))

	return newSessionMiddleware(gate)
}

func TestRequireAdminRejectsNonAdminRole(t *testing.T) {
	guard := testGuard(t)

	var handlerRan bool
	protected := guard.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	}))

	// A resolved session whose role is not "admin" must redirect to login and
	// never reach the handler, on every attempt.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req = req.WithContext(ctxWithIdentity(req.Context(), &auth.Identity{
			ID:       auth.AdminID,
			Username: testAdminUser,
			Role:     "viewer",
		}))

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/admin/login", rec.Header().Get("Location"))
		require.False(t, handlerRan)
	}
}

func TestRequireAdminRejectsMissingIdentity(t *testing.T) {
	guard := testGuard(t)

	var handlerRan bool
	protected := guard.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	}))

	// No context identity and no session cookie: requireAdmin must hold on
	// its own, without requireSession having run first.
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/login", rec.Header().Get("Location"))
	require.False(t, handlerRan)
}

func TestRequireAdminPassesAdminIdentity(t *testing.T) {
	guard := testGuard(t)

	var handlerRan bool
	protected := guard.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req = req.WithContext(ctxWithIdentity(req.Context(), &auth.Identity{
		ID:       auth.AdminID,
		Username: testAdminUser,
		Role:     auth.RoleAdmin,
	}))

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, handlerRan)
}
