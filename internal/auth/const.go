package auth

type SessionKey string

var (
	SessionKeyAuthenticated SessionKey = "authenticated"
	SessionKeyOauthState    SessionKey = "oauth_state"
	SessionKeyOauthNonce    SessionKey = "oauth_nonce"
	SessionKeyAccessToken   SessionKey = "access_token"
	SessionKeyRefreshToken  SessionKey = "refresh_token"
	SessionKeyIDToken       SessionKey = "id_token"
	SessionKeyUserProfile   SessionKey = "user_profile"
	SessionKeyCreatedAt     SessionKey = "created_at"
)
