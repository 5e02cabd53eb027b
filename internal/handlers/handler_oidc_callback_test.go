package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"river-watch/internal/config"
	"river-watch/internal/models"
	"river-watch/internal/testutil"

	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
)

func callbackConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			FrontendURL: "https://rivers.example.com",
		},
	}
}

func TestCallbackHandler_ShouldRedirectToErrorPageOnProviderError(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/callback?error=access_denied&error_description=user+cancelled")
	defer tc.Finish()
	tc.WithConfig(callbackConfig())

	tc.CallHandler(GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "https://rivers.example.com/auth/error")
	tc.AssertLogsContainMessage(t, slog.LevelWarn, "OIDC callback error")
}

func TestCallbackHandler_ShouldRejectMismatchedStateWithoutExchange(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/callback?state=attacker&code=abc")
	defer tc.Finish()
	tc.WithConfig(callbackConfig())

	tc.MockSession.EXPECT().GetOauthState(tc.AppContext).Return("expected")

	// No Exchange expectation: the controller must not touch the provider.
	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONString(t, "error", "Invalid state parameter")
}

func TestCallbackHandler_ShouldRejectMissingState(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/callback?code=abc")
	defer tc.Finish()
	tc.WithConfig(callbackConfig())

	tc.MockSession.EXPECT().GetOauthState(tc.AppContext).Return("expected")

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONString(t, "error", "Invalid state parameter")
}

func TestCallbackHandler_ShouldRejectMissingCode(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/callback?state=expected")
	defer tc.Finish()
	tc.WithConfig(callbackConfig())

	tc.MockSession.EXPECT().GetOauthState(tc.AppContext).Return("expected")
	tc.MockSession.EXPECT().ClearOauthState(tc.AppContext)
	tc.MockSession.EXPECT().ClearOauthNonce(tc.AppContext)

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONString(t, "error", "No authorization code received")
}

func TestCallbackHandler_ShouldRedirectToErrorPageOnExchangeFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/callback?state=expected&code=abc")
	defer tc.Finish()
	tc.WithConfig(callbackConfig())

	tc.MockSession.EXPECT().GetOauthState(tc.AppContext).Return("expected")
	tc.MockSession.EXPECT().ClearOauthState(tc.AppContext)
	tc.MockSession.EXPECT().ClearOauthNonce(tc.AppContext)
	tc.MockOIDC.EXPECT().Exchange(gomock.Any(), "abc").Return(nil, errors.New("invalid_grant"))

	tc.CallHandler(GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "https://rivers.example.com/auth/error")
	tc.AssertLogsContainMessage(t, slog.LevelError, "Failed to handle OIDC callback")
}

func TestCallbackHandler_ShouldRedirectToErrorPageOnUserinfoFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/callback?state=expected&code=abc")
	defer tc.Finish()
	tc.WithConfig(callbackConfig())

	token := &oauth2.Token{AccessToken: "at", RefreshToken: "rt"}

	tc.MockSession.EXPECT().GetOauthState(tc.AppContext).Return("expected")
	tc.MockSession.EXPECT().ClearOauthState(tc.AppContext)
	tc.MockSession.EXPECT().ClearOauthNonce(tc.AppContext)
	tc.MockOIDC.EXPECT().Exchange(gomock.Any(), "abc").Return(token, nil)
	tc.MockSession.EXPECT().SetTokens(tc.AppContext, "at", "rt", "")
	tc.MockOIDC.EXPECT().UserInfo(gomock.Any(), token).Return(nil, errors.New("userinfo unavailable"))

	tc.CallHandler(GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "https://rivers.example.com/auth/error")
}

func TestCallbackHandler_ShouldAuthenticateSessionOnSuccess(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/callback?state=expected&code=abc")
	defer tc.Finish()
	tc.WithConfig(callbackConfig())

	token := &oauth2.Token{AccessToken: "at", RefreshToken: "rt"}
	profile := &models.UserProfile{
		Sub:               "user-123",
		PreferredUsername: "marion",
		Email:             "marion@example.com",
	}

	tc.MockSession.EXPECT().GetOauthState(tc.AppContext).Return("expected")
	tc.MockSession.EXPECT().ClearOauthState(tc.AppContext)
	tc.MockSession.EXPECT().ClearOauthNonce(tc.AppContext)
	tc.MockOIDC.EXPECT().Exchange(gomock.Any(), "abc").Return(token, nil)
	tc.MockSession.EXPECT().SetTokens(tc.AppContext, "at", "rt", "")
	tc.MockOIDC.EXPECT().UserInfo(gomock.Any(), token).Return(profile, nil)
	tc.MockSession.EXPECT().SetUserProfile(tc.AppContext, profile)
	tc.MockSession.EXPECT().SetAuthenticated(tc.AppContext, true)
	tc.MockSession.EXPECT().SetCreatedAt(tc.AppContext, gomock.AssignableToTypeOf(time.Time{}))

	tc.CallHandler(GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "https://rivers.example.com/auth/success")
	tc.AssertLogsContainMessage(t, slog.LevelInfo, "User successfully authenticated")
}
