package handlers

import "river-watch/internal/models"

type AuthStatusResponse struct {
	Authenticated bool                `json:"authenticated"`
	UserProfile   *models.UserProfile `json:"userProfile"`
}

type AuthLoginResponse struct {
	AuthURL string `json:"authUrl"`
}

type AuthTokenResponse struct {
	Token string `json:"token"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type StationInfo struct {
	Name     string `json:"name"`
	SourceID string `json:"source_id"`
}
