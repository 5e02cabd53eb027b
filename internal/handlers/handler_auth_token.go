package handlers

import (
	"net/http"

	"river-watch/internal/middlewares"
)

// GETTokenHandler discloses the access token to the session that owns it,
// over the authenticated session cookie, for use as a bearer credential
// against the backend API. Stale token fields on an unauthenticated session
// are never returned.
func GETTokenHandler(ctx *middlewares.AppContext) {
	if !ctx.SessionManager.IsAuthenticated(ctx) {
		ctx.Logger.Debug("Token requested without authenticated session")
		ctx.SetJSONError(http.StatusUnauthorized, "Not authenticated")
		return
	}

	token := ctx.SessionManager.GetAccessToken(ctx)
	if token == "" {
		ctx.Logger.Warn("Authenticated session has no access token")
		ctx.SetJSONError(http.StatusUnauthorized, "Not authenticated")
		return
	}

	ctx.WriteJSON(http.StatusOK, AuthTokenResponse{Token: token})
}
