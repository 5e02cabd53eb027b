package models

// UserProfile is the identity provider's userinfo response, cached verbatim
// in the session. Field names follow the standard OIDC claim names.
type UserProfile struct {
	Sub               string `json:"sub"`
	Name              string `json:"name,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
	GivenName         string `json:"given_name,omitempty"`
	FamilyName        string `json:"family_name,omitempty"`
	Email             string `json:"email,omitempty"`
	EmailVerified     bool   `json:"email_verified,omitempty"`
}

// DisplayName returns the first non-empty human-readable name claim.
func (p *UserProfile) DisplayName() string {
	for _, v := range []string{p.Name, p.PreferredUsername, p.Email} {
		if v != "" {
			return v
		}
	}

	return p.Sub
}
