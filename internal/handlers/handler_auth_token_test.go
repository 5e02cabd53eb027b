package handlers

import (
	"net/http"
	"testing"

	"river-watch/internal/testutil"
)

func TestTokenHandler_ShouldRejectAnonymousSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/token")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)

	tc.CallHandler(GETTokenHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONString(t, "error", "Not authenticated")
}

func TestTokenHandler_ShouldNotServeStaleTokenOnDowngradedSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/token")
	defer tc.Finish()

	// A downgraded session may still carry token fields; the flag alone
	// decides.
	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)

	tc.CallHandler(GETTokenHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONString(t, "error", "Not authenticated")
}

func TestTokenHandler_ShouldRejectAuthenticatedSessionWithoutToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/token")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetAccessToken(tc.AppContext).Return("")

	tc.CallHandler(GETTokenHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONString(t, "error", "Not authenticated")
}

func TestTokenHandler_ShouldReturnAccessToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/token")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetAccessToken(tc.AppContext).Return("access-token-value")

	tc.CallHandler(GETTokenHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONString(t, "token", "access-token-value")
}
