package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestAuthMiddlewareAllowsReads(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	AuthMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/users", nil))

	require.True(t, *called)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareAllowsRegist(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	AuthMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/regist", nil))

	require.True(t, *called)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	AuthMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/friend", nil))

	require.False(t, *called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsBadHeader(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/v1/friend", nil)
	req.Header.Set("Authorization", "Basic abc123")
	AuthMiddleware(next).ServeHTTP(rec, req)

	require.False(t, *called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewarePassesValidToken(t *testing.T) {
	token, err := GenerateToken("doragee")
	require.NoError(t, err)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value(CtxUserID).(string)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/friend", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	AuthMiddleware(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "doragee", gotUserID)
}
