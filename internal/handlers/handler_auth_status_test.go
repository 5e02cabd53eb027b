package handlers

import (
	"net/http"
	"testing"

	"river-watch/internal/models"
	"river-watch/internal/testutil"
)

func TestAuthStatusHandler_ShouldReportAnonymousSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONBool(t, "authenticated", false)
	tc.AssertJSONNull(t, "userProfile")
}

func TestAuthStatusHandler_ShouldReturnProfileForAuthenticatedSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	profile := &models.UserProfile{
		Sub:               "user-123",
		PreferredUsername: "marion",
		Email:             "marion@example.com",
	}

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetUserProfile(tc.AppContext).Return(profile, true)

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)
	tc.AssertJSONObject(t, "userProfile", map[string]interface{}{
		"sub":                "user-123",
		"preferred_username": "marion",
		"email":              "marion@example.com",
	})
}

func TestAuthStatusHandler_ShouldReportAnonymousWhenProfileMissing(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetUserProfile(tc.AppContext).Return(nil, false)

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", false)
	tc.AssertJSONNull(t, "userProfile")
}
