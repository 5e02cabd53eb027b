package auth

import (
	"net/http"
	"time"

	"river-watch/internal/metrics"
	"river-watch/internal/middlewares"
	"river-watch/internal/models"
)

// The flow controller drives the session through
// ANONYMOUS -> PENDING(state, nonce) -> AUTHENTICATED -> (REFRESHED | EXPIRED | LOGGED_OUT).
// All session access goes through the handle passed in; there is no ambient
// session state.

// StartLogin writes a fresh state/nonce pair into the session, discarding any
// pending pair from an earlier initiation, and returns the authorization URL.
// No provider call is made.
func StartLogin(ctx *middlewares.AppContext) (string, error) {
	state := GenerateRandString(32)
	nonce := GenerateRandString(32)

	ctx.SessionManager.SetOauthState(ctx, state)
	ctx.SessionManager.SetOauthNonce(ctx, nonce)

	return ctx.OIDCProvider.AuthCodeURL(state, nonce), nil
}

// HandleCallback validates the returned state against the pending value,
// exchanges the code, stores the tokens, and caches the userinfo profile.
// The state check happens before any network call; a mismatch is a hard
// rejection and the session stays unauthenticated.
func HandleCallback(ctx *middlewares.AppContext) (*models.UserProfile, error) {
	receivedState := ctx.Request.URL.Query().Get("state")
	storedState := ctx.SessionManager.GetOauthState(ctx)

	if receivedState == "" || storedState == "" || receivedState != storedState {
		return nil, &FlowError{
			Status:  http.StatusBadRequest,
			Message: "Invalid state parameter",
		}
	}

	// The pending pair is single-use; consume it before going upstream.
	ctx.SessionManager.ClearOauthState(ctx)
	ctx.SessionManager.ClearOauthNonce(ctx)

	code := ctx.Request.URL.Query().Get("code")
	if code == "" {
		return nil, &FlowError{
			Status:  http.StatusBadRequest,
			Message: "No authorization code received",
		}
	}

	token, err := ctx.OIDCProvider.Exchange(ctx.Request.Context(), code)
	if err != nil {
		return nil, &FlowError{
			RedirectURL: ctx.Config.Server.FrontendURL + "/auth/error",
			Message:     "Failed to exchange code for token",
			Err:         err,
		}
	}

	idToken, _ := token.Extra("id_token").(string)
	ctx.SessionManager.SetTokens(ctx, token.AccessToken, token.RefreshToken, idToken)

	profile, err := ctx.OIDCProvider.UserInfo(ctx.Request.Context(), token)
	if err != nil {
		return nil, &FlowError{
			RedirectURL: ctx.Config.Server.FrontendURL + "/auth/error",
			Message:     "Failed to fetch user info",
			Err:         err,
		}
	}

	ctx.SessionManager.SetUserProfile(ctx, profile)
	ctx.SessionManager.SetAuthenticated(ctx, true)
	ctx.SessionManager.SetCreatedAt(ctx, time.Now())

	metrics.SessionLogins.Inc()

	return profile, nil
}

// RefreshTokens exchanges the session's refresh token for a fresh access
// token. On provider failure the session is downgraded to unauthenticated but
// not destroyed; the stored tokens are retained.
func RefreshTokens(ctx *middlewares.AppContext) error {
	refreshToken := ctx.SessionManager.GetRefreshToken(ctx)
	if refreshToken == "" {
		return &FlowError{
			Status:  http.StatusUnauthorized,
			Message: "No refresh token available",
		}
	}

	token, err := ctx.OIDCProvider.Refresh(ctx.Request.Context(), refreshToken)
	if err != nil {
		ctx.SessionManager.SetAuthenticated(ctx, false)
		return &FlowError{
			Status:  http.StatusUnauthorized,
			Message: "Failed to refresh token",
			Err:     err,
		}
	}

	ctx.SessionManager.SetAccessToken(ctx, token.AccessToken)

	// Some providers rotate the refresh token, some reuse it.
	if token.RefreshToken != "" && token.RefreshToken != refreshToken {
		ctx.SessionManager.SetRefreshToken(ctx, token.RefreshToken)
	}

	return nil
}

// Logout revokes the refresh token upstream on a best-effort basis and then
// destroys the session unconditionally. Neither a revocation failure nor a
// store failure blocks the local half of logout; the cookie is cleared
// regardless.
func Logout(ctx *middlewares.AppContext) error {
	if refreshToken := ctx.SessionManager.GetRefreshToken(ctx); refreshToken != "" {
		if err := ctx.OIDCProvider.RevokeRefreshToken(ctx.Request.Context(), refreshToken); err != nil {
			ctx.Logger.Warn("failed to revoke refresh token upstream", "error", err)
		}
	}

	if err := ctx.SessionManager.Destroy(ctx); err != nil {
		ctx.Logger.Error("failed to destroy session", "error", err)
	}

	metrics.SessionLogouts.Inc()

	return nil
}
