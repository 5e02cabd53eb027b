package handlers

import (
	"net/http"

	"river-watch/internal/middlewares"
)

// GETAuthStatusHandler is read-only: it reflects the session record and never
// talks to the identity provider. Tokens are not part of the response.
func GETAuthStatusHandler(ctx *middlewares.AppContext) {
	response := AuthStatusResponse{
		Authenticated: false,
	}

	if ctx.SessionManager.IsAuthenticated(ctx) {
		if profile, ok := ctx.SessionManager.GetUserProfile(ctx); ok {
			response.Authenticated = true
			response.UserProfile = profile
		}
	}

	ctx.WriteJSON(http.StatusOK, response)
}
