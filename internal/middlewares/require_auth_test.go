package middlewares_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"river-watch/internal/config"
	"river-watch/internal/middlewares"
	"river-watch/internal/mocks"
	"river-watch/internal/testutil"

	"go.uber.org/mock/gomock"
)

func newAuthGate(t *testing.T) (*mocks.MockSessionProvider, http.Handler, *bool) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSessionProvider(ctrl)

	baseCtx := middlewares.NewAppContext(
		context.Background(),
		&config.Config{},
		slog.New(testutil.NewTestLogHandler()),
		nil, nil,
		session,
		nil, nil,
	)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	handler := middlewares.AppContextMiddleware(baseCtx)(middlewares.RequireSessionAuth(next))
	return session, handler, &reached
}

func TestRequireSessionAuth_ShouldRejectAnonymousSession(t *testing.T) {
	session, handler, reached := newAuthGate(t)

	session.EXPECT().IsAuthenticated(gomock.Any()).Return(false)

	req := httptest.NewRequest("GET", "/api/stations", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
	if *reached {
		t.Error("expected the inner handler not to run")
	}
}

func TestRequireSessionAuth_ShouldPassAuthenticatedSession(t *testing.T) {
	session, handler, reached := newAuthGate(t)

	session.EXPECT().IsAuthenticated(gomock.Any()).Return(true)

	req := httptest.NewRequest("GET", "/api/stations", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	if !*reached {
		t.Error("expected the inner handler to run")
	}
}

func TestRequireSessionAuth_ShouldRejectForeignBearerToken(t *testing.T) {
	session, handler, reached := newAuthGate(t)

	session.EXPECT().IsAuthenticated(gomock.Any()).Return(true)
	session.EXPECT().GetAccessToken(gomock.Any()).Return("session-token")

	req := httptest.NewRequest("GET", "/api/stations", nil)
	req.Header.Set("Authorization", "Bearer someone-elses-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
	if *reached {
		t.Error("expected the inner handler not to run")
	}
}

func TestRequireSessionAuth_ShouldAcceptOwnBearerToken(t *testing.T) {
	session, handler, reached := newAuthGate(t)

	session.EXPECT().IsAuthenticated(gomock.Any()).Return(true)
	session.EXPECT().GetAccessToken(gomock.Any()).Return("session-token")

	req := httptest.NewRequest("GET", "/api/stations", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	if !*reached {
		t.Error("expected the inner handler to run")
	}
}
