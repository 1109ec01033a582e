package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/cupcakemc/external/identity"
	"github.com/caffeinepub/cupcakemc/internal/cache"
	"github.com/caffeinepub/cupcakemc/internal/middleware"
)

func newAuthApp(t *testing.T) (*echo.Echo, *cache.Store) {
	t.Helper()
	providerSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"principal":"user-alice","name":"Alice","token":"backend-tok"}`))
	}))
	t.Cleanup(providerSrv.Close)

	provider := identity.NewProviderWithBase(providerSrv.URL, "client-id", "https://shop.example.com/api/auth/callback")
	store := cache.NewStore(nil)

	e := echo.New()
	e.Use(middleware.SessionMiddleware())
	registerAuthRoutes(e.Group("/api"), provider, store)
	return e, store
}

func callbackRequest(state, cookieValue string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback?state="+state+"&code=auth-code", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: stateCookie, Value: cookieValue})
	}
	return req
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestCallbackIssuesSessionAndExpiresState(t *testing.T) {
	e, _ := newAuthApp(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, callbackRequest("state-1", "state-1"))
	require.Equal(t, http.StatusFound, rec.Code)

	cookies := rec.Result().Cookies()
	session := cookieByName(cookies, middleware.SessionCookie)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Value)

	// the consumed state must not be replayable for the rest of its window
	state := cookieByName(cookies, stateCookie)
	require.NotNil(t, state, "callback must expire the state cookie it consumed")
	assert.Empty(t, state.Value)
	assert.Negative(t, state.MaxAge)
}

func TestCallbackRejectsStateMismatch(t *testing.T) {
	e, _ := newAuthApp(t)

	for _, tc := range []struct {
		name   string
		state  string
		cookie string
	}{
		{"no cookie", "state-1", ""},
		{"wrong state", "state-1", "state-2"},
		{"empty state", "", "state-1"},
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, callbackRequest(tc.state, tc.cookie))
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.name)
		assert.Nil(t, cookieByName(rec.Result().Cookies(), middleware.SessionCookie), tc.name)
	}
}

func TestLogoutClearsSessionAndCache(t *testing.T) {
	e, store := newAuthApp(t)

	_, err := cache.Fetch(context.Background(), store, "cart/alice",
		func(ctx context.Context) (string, error) { return "cached", nil },
		cache.Options{Enabled: true})
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	session := cookieByName(rec.Result().Cookies(), middleware.SessionCookie)
	require.NotNil(t, session)
	assert.Empty(t, session.Value)
	assert.Negative(t, session.MaxAge)
	assert.Equal(t, 0, store.Len())
}
