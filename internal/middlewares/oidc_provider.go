package middlewares

import (
	"context"

	"river-watch/internal/models"

	"golang.org/x/oauth2"
)

//go:generate mockgen -source=oidc_provider.go -destination=../mocks/oidc.go -package=mocks

// OIDCProvider is the stateless client for the identity provider. Each method
// is a single request with no retry; failures carry the provider's error
// detail for logging, never for the browser.
type OIDCProvider interface {
	AuthCodeURL(state, nonce string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	UserInfo(ctx context.Context, token *oauth2.Token) (*models.UserProfile, error)
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	RevokeRefreshToken(ctx context.Context, refreshToken string) error
}
