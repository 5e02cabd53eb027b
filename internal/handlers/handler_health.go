package handlers

import (
	"net/http"

	"river-watch/internal/middlewares"
	"river-watch/internal/version"
)

// HandlerHealth reports liveness plus the running build, so deployments can
// confirm which version answered.
func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, map[string]string{
		"status":  "OK",
		"version": version.GetVersion(),
	})
}
