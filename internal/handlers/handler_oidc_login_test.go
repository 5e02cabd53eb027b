package handlers

import (
	"net/http"
	"testing"

	"river-watch/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestLoginHandler_ShouldReturnAuthURL(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/login")
	defer tc.Finish()

	tc.MockSession.EXPECT().SetOauthState(tc.AppContext, gomock.Any())
	tc.MockSession.EXPECT().SetOauthNonce(tc.AppContext, gomock.Any())
	tc.MockOIDC.EXPECT().AuthCodeURL(gomock.Any(), gomock.Any()).
		Return("https://idp.example.com/realms/rivers/protocol/openid-connect/auth?state=abc")

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONString(t, "authUrl", "https://idp.example.com/realms/rivers/protocol/openid-connect/auth?state=abc")
}

func TestLoginHandler_ShouldPassStateAndNonceToProvider(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/login")
	defer tc.Finish()

	var storedState, storedNonce string
	tc.MockSession.EXPECT().SetOauthState(tc.AppContext, gomock.Any()).
		Do(func(_ any, state string) { storedState = state })
	tc.MockSession.EXPECT().SetOauthNonce(tc.AppContext, gomock.Any()).
		Do(func(_ any, nonce string) { storedNonce = nonce })

	var urlState, urlNonce string
	tc.MockOIDC.EXPECT().AuthCodeURL(gomock.Any(), gomock.Any()).
		DoAndReturn(func(state, nonce string) string {
			urlState = state
			urlNonce = nonce
			return "https://idp.example.com/auth"
		})

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)

	if storedState == "" || storedNonce == "" {
		t.Fatal("Expected non-empty state and nonce to be stored in the session")
	}

	if storedState == storedNonce {
		t.Error("Expected state and nonce to be generated independently")
	}

	if urlState != storedState || urlNonce != storedNonce {
		t.Error("Expected the authorization URL to carry the stored state and nonce")
	}
}
