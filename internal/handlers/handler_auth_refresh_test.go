package handlers

import (
	"errors"
	"net/http"
	"testing"

	"river-watch/internal/testutil"

	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
)

func TestRefreshHandler_ShouldRejectSessionWithoutRefreshToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/refresh")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetRefreshToken(tc.AppContext).Return("")

	// No Refresh expectation: the provider must not be called.
	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONString(t, "error", "No refresh token available")
}

func TestRefreshHandler_ShouldDowngradeSessionOnProviderFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/refresh")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetRefreshToken(tc.AppContext).Return("rt")
	tc.MockOIDC.EXPECT().Refresh(gomock.Any(), "rt").Return(nil, errors.New("invalid_grant"))
	tc.MockSession.EXPECT().SetAuthenticated(tc.AppContext, false)

	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONString(t, "error", "Failed to refresh token")
}

func TestRefreshHandler_ShouldStoreNewAccessToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/refresh")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetRefreshToken(tc.AppContext).Return("rt")
	tc.MockOIDC.EXPECT().Refresh(gomock.Any(), "rt").
		Return(&oauth2.Token{AccessToken: "new-at", RefreshToken: "rt"}, nil)
	tc.MockSession.EXPECT().SetAccessToken(tc.AppContext, "new-at")

	// Refresh token unchanged, so no SetRefreshToken call.
	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "success", true)
}

func TestRefreshHandler_ShouldRotateRefreshTokenWhenProviderIssuesNewOne(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/refresh")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetRefreshToken(tc.AppContext).Return("rt")
	tc.MockOIDC.EXPECT().Refresh(gomock.Any(), "rt").
		Return(&oauth2.Token{AccessToken: "new-at", RefreshToken: "new-rt"}, nil)
	tc.MockSession.EXPECT().SetAccessToken(tc.AppContext, "new-at")
	tc.MockSession.EXPECT().SetRefreshToken(tc.AppContext, "new-rt")

	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "success", true)
}
