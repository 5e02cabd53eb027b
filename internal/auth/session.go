package auth

import (
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"river-watch/internal/config"
	"river-watch/internal/middlewares"
	"river-watch/internal/models"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
)

type SessionManager struct {
	*scs.SessionManager
}

func NewSessionManager(logger *slog.Logger, cfg *config.Config) (*SessionManager, error) {
	gob.Register(&models.UserProfile{})
	sessionManager := scs.New()

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Address,
			Username:     cfg.Redis.Username,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.SessionIndex,
			MinIdleConns: 2,
		})

		ctx := context.Background()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}

		logger.Info("session store connected to redis", "address", cfg.Redis.Address, "db", cfg.Redis.SessionIndex)

		sessionManager.Store = goredisstore.New(client)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	// Fixed absolute lifetime from creation, no sliding renewal.
	sessionManager.Lifetime = cfg.Sessions.FixedTimeout
	sessionManager.IdleTimeout = 0

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Sessions.Secure
	sessionManager.Cookie.Path = "/"

	return &SessionManager{SessionManager: sessionManager}, nil
}

func (s *SessionManager) LoadAndSave(next http.Handler) http.Handler {
	return s.SessionManager.LoadAndSave(next)
}

func (s *SessionManager) SetAuthenticated(ctx *middlewares.AppContext, authenticated bool) {
	s.Put(ctx, string(SessionKeyAuthenticated), authenticated)
}

func (s *SessionManager) IsAuthenticated(ctx *middlewares.AppContext) bool {
	return s.GetBool(ctx, string(SessionKeyAuthenticated))
}

func (s *SessionManager) SetOauthState(ctx *middlewares.AppContext, state string) {
	s.Put(ctx, string(SessionKeyOauthState), state)
}

func (s *SessionManager) GetOauthState(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyOauthState))
}

func (s *SessionManager) ClearOauthState(ctx *middlewares.AppContext) {
	s.Remove(ctx, string(SessionKeyOauthState))
}

func (s *SessionManager) SetOauthNonce(ctx *middlewares.AppContext, nonce string) {
	s.Put(ctx, string(SessionKeyOauthNonce), nonce)
}

func (s *SessionManager) GetOauthNonce(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyOauthNonce))
}

func (s *SessionManager) ClearOauthNonce(ctx *middlewares.AppContext) {
	s.Remove(ctx, string(SessionKeyOauthNonce))
}

func (s *SessionManager) SetTokens(ctx *middlewares.AppContext, accessToken, refreshToken, idToken string) {
	s.Put(ctx, string(SessionKeyAccessToken), accessToken)
	s.Put(ctx, string(SessionKeyRefreshToken), refreshToken)
	s.Put(ctx, string(SessionKeyIDToken), idToken)
}

func (s *SessionManager) SetAccessToken(ctx *middlewares.AppContext, accessToken string) {
	s.Put(ctx, string(SessionKeyAccessToken), accessToken)
}

func (s *SessionManager) GetAccessToken(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyAccessToken))
}

func (s *SessionManager) SetRefreshToken(ctx *middlewares.AppContext, refreshToken string) {
	s.Put(ctx, string(SessionKeyRefreshToken), refreshToken)
}

func (s *SessionManager) GetRefreshToken(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyRefreshToken))
}

func (s *SessionManager) GetIDToken(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyIDToken))
}

func (s *SessionManager) SetUserProfile(ctx *middlewares.AppContext, profile *models.UserProfile) {
	s.Put(ctx, string(SessionKeyUserProfile), profile)
}

func (s *SessionManager) GetUserProfile(ctx *middlewares.AppContext) (profile *models.UserProfile, ok bool) {
	data := s.Get(ctx, string(SessionKeyUserProfile))
	if data == nil {
		return nil, false
	}

	if profile, ok := data.(*models.UserProfile); ok {
		return profile, true
	}

	return nil, false
}

func (s *SessionManager) SetCreatedAt(ctx *middlewares.AppContext, createdAt time.Time) {
	s.Put(ctx, string(SessionKeyCreatedAt), createdAt.Unix())
}

func (s *SessionManager) GetCreatedAt(ctx *middlewares.AppContext) (time.Time, bool) {
	timestamp := s.GetInt64(ctx, string(SessionKeyCreatedAt))
	if timestamp == 0 {
		return time.Time{}, false
	}
	return time.Unix(timestamp, 0), true
}

func (s *SessionManager) Destroy(ctx *middlewares.AppContext) error {
	return s.SessionManager.Destroy(ctx.Request.Context())
}
