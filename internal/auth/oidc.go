package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"river-watch/internal/config"
	"river-watch/internal/metrics"
	"river-watch/internal/middlewares"
	"river-watch/internal/models"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// NewKeycloakProvider discovers the realm's endpoints from the issuer and
// returns the stateless identity-provider client. ID tokens are not verified
// locally; identity comes from the userinfo endpoint.
func NewKeycloakProvider(ctx context.Context, cfg config.OIDCConfig) (middlewares.OIDCProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       cfg.Scopes,
		RedirectURL:  cfg.RedirectURI,
	}

	var claims struct {
		RevocationEndpoint string `json:"revocation_endpoint"`
	}
	revocationEndpoint := cfg.IssuerURL() + "/protocol/openid-connect/revoke"
	if err := provider.Claims(&claims); err == nil && claims.RevocationEndpoint != "" {
		revocationEndpoint = claims.RevocationEndpoint
	}

	return &KeycloakProvider{
		provider:           provider,
		oauth2Config:       oauth2Config,
		revocationEndpoint: revocationEndpoint,
		httpClient:         http.DefaultClient,
	}, nil
}

type KeycloakProvider struct {
	provider           *oidc.Provider
	oauth2Config       *oauth2.Config
	revocationEndpoint string
	httpClient         *http.Client
}

func (k *KeycloakProvider) AuthCodeURL(state, nonce string) string {
	return k.oauth2Config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
	)
}

func (k *KeycloakProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := k.oauth2Config.Exchange(ctx, code)
	if err != nil {
		metrics.IdPRequests.WithLabelValues(metrics.IdPOperationExchange, metrics.OutcomeFailure).Inc()
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	metrics.IdPRequests.WithLabelValues(metrics.IdPOperationExchange, metrics.OutcomeSuccess).Inc()
	return token, nil
}

func (k *KeycloakProvider) UserInfo(ctx context.Context, token *oauth2.Token) (*models.UserProfile, error) {
	userInfo, err := k.provider.UserInfo(ctx, oauth2.StaticTokenSource(token))
	if err != nil {
		metrics.IdPRequests.WithLabelValues(metrics.IdPOperationUserinfo, metrics.OutcomeFailure).Inc()
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	profile := &models.UserProfile{}
	if err := userInfo.Claims(profile); err != nil {
		metrics.IdPRequests.WithLabelValues(metrics.IdPOperationUserinfo, metrics.OutcomeFailure).Inc()
		return nil, fmt.Errorf("failed to parse user info claims: %w", err)
	}

	metrics.IdPRequests.WithLabelValues(metrics.IdPOperationUserinfo, metrics.OutcomeSuccess).Inc()
	return profile, nil
}

func (k *KeycloakProvider) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	tokenSource := k.oauth2Config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	token, err := tokenSource.Token()
	if err != nil {
		metrics.IdPRequests.WithLabelValues(metrics.IdPOperationRefresh, metrics.OutcomeFailure).Inc()
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	metrics.IdPRequests.WithLabelValues(metrics.IdPOperationRefresh, metrics.OutcomeSuccess).Inc()
	return token, nil
}

func (k *KeycloakProvider) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	form := url.Values{
		"token":           {refreshToken},
		"token_type_hint": {"refresh_token"},
		"client_id":       {k.oauth2Config.ClientID},
		"client_secret":   {k.oauth2Config.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.revocationEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build revocation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := k.httpClient.Do(req)
	if err != nil {
		metrics.IdPRequests.WithLabelValues(metrics.IdPOperationRevoke, metrics.OutcomeFailure).Inc()
		return fmt.Errorf("revocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		metrics.IdPRequests.WithLabelValues(metrics.IdPOperationRevoke, metrics.OutcomeFailure).Inc()
		return fmt.Errorf("revocation rejected with status %d: %s", resp.StatusCode, string(body))
	}

	metrics.IdPRequests.WithLabelValues(metrics.IdPOperationRevoke, metrics.OutcomeSuccess).Inc()
	return nil
}
