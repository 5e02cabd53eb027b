package middlewares

import (
	"net/http"
	"time"

	"river-watch/internal/models"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

// SessionProvider is the typed view over the server-side session record. The
// record is created lazily on first write, mutated across the login flow, and
// destroyed on logout or fixed expiry.
type SessionProvider interface {
	SetAuthenticated(ctx *AppContext, authenticated bool)
	IsAuthenticated(ctx *AppContext) bool

	SetOauthState(ctx *AppContext, state string)
	GetOauthState(ctx *AppContext) string
	ClearOauthState(ctx *AppContext)
	SetOauthNonce(ctx *AppContext, nonce string)
	GetOauthNonce(ctx *AppContext) string
	ClearOauthNonce(ctx *AppContext)

	SetTokens(ctx *AppContext, accessToken, refreshToken, idToken string)
	SetAccessToken(ctx *AppContext, accessToken string)
	GetAccessToken(ctx *AppContext) string
	SetRefreshToken(ctx *AppContext, refreshToken string)
	GetRefreshToken(ctx *AppContext) string
	GetIDToken(ctx *AppContext) string

	SetUserProfile(ctx *AppContext, profile *models.UserProfile)
	GetUserProfile(ctx *AppContext) (profile *models.UserProfile, ok bool)

	SetCreatedAt(ctx *AppContext, createdAt time.Time)
	GetCreatedAt(ctx *AppContext) (time.Time, bool)

	Destroy(ctx *AppContext) error

	LoadAndSave(next http.Handler) http.Handler
}
