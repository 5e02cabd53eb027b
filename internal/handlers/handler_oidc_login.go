package handlers

import (
	"net/http"

	"river-watch/internal/auth"
	"river-watch/internal/middlewares"
)

// GETLoginHandler starts a login. A repeated initiation on the same session
// overwrites the pending state/nonce pair, invalidating the earlier one.
func GETLoginHandler(ctx *middlewares.AppContext) {
	authURL, err := auth.StartLogin(ctx)
	if err != nil {
		ctx.Logger.Error("Failed to start login", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Logger.Debug("Issued authorization URL")

	ctx.WriteJSON(http.StatusOK, AuthLoginResponse{AuthURL: authURL})
}
