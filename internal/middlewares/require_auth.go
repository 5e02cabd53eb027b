package middlewares

import (
	"net/http"

	"river-watch/internal/utils"
)

// RequireSessionAuth gates the telemetry API behind an authenticated session.
// A bearer token matching the session's own access token is also accepted so
// the frontend can reuse the token it obtained from /api/auth/token.
func RequireSessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !appCtx.SessionManager.IsAuthenticated(appCtx) {
			appCtx.SetJSONError(http.StatusUnauthorized, "Not authenticated")
			return
		}

		if authToken, err := utils.ExtractAuthorizationHeader(r); err == nil {
			if authToken != appCtx.SessionManager.GetAccessToken(appCtx) {
				appCtx.SetJSONError(http.StatusUnauthorized, "Not authenticated")
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
