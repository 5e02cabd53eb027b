package handlers

import (
	"net/http"

	"river-watch/internal/auth"
	"river-watch/internal/middlewares"
)

// POSTLogoutHandler always acknowledges the local half of logout: revocation
// and store failures are logged inside the flow, the cookie is cleared either
// way.
func POSTLogoutHandler(ctx *middlewares.AppContext) {
	if err := auth.Logout(ctx); err != nil {
		ctx.Logger.Error("Failed to logout", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Logout failed")
		return
	}

	ctx.Logger.Info("User logged out")

	ctx.WriteJSON(http.StatusOK, SuccessResponse{Success: true})
}
