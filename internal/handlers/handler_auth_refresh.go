package handlers

import (
	"errors"
	"net/http"

	"river-watch/internal/auth"
	"river-watch/internal/middlewares"
)

func POSTRefreshHandler(ctx *middlewares.AppContext) {
	if err := auth.RefreshTokens(ctx); err != nil {
		ctx.Logger.Warn("Token refresh failed", "error", err)

		var flowErr *auth.FlowError
		if errors.As(err, &flowErr) && flowErr.Status != 0 {
			ctx.SetJSONError(flowErr.Status, flowErr.Message)
			return
		}

		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.WriteJSON(http.StatusOK, SuccessResponse{Success: true})
}
