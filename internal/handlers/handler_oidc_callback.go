package handlers

import (
	"errors"
	"net/http"

	"river-watch/internal/auth"
	"river-watch/internal/middlewares"
)

func GETCallbackHandler(ctx *middlewares.AppContext) {
	if errorParam := ctx.Request.URL.Query().Get("error"); errorParam != "" {
		errorDesc := ctx.Request.URL.Query().Get("error_description")

		ctx.Logger.Warn("OIDC callback error", "error", errorParam, "description", errorDesc)
		ctx.Redirect(ctx.Config.Server.FrontendURL+"/auth/error", http.StatusFound)
		return
	}

	profile, err := auth.HandleCallback(ctx)
	if err != nil {
		ctx.Logger.Error("Failed to handle OIDC callback", "error", err)

		var flowErr *auth.FlowError
		if errors.As(err, &flowErr) {
			if flowErr.Status != 0 {
				ctx.SetJSONError(flowErr.Status, flowErr.Message)
				return
			}

			ctx.Redirect(flowErr.RedirectURL, http.StatusFound)
			return
		}

		ctx.Redirect(ctx.Config.Server.FrontendURL+"/auth/error", http.StatusFound)
		return
	}

	ctx.Logger.Info("User successfully authenticated",
		"user_id", profile.Sub,
		"username", profile.PreferredUsername,
	)

	ctx.Redirect(ctx.Config.Server.FrontendURL+"/auth/success", http.StatusFound)
}
