package auth_test

import (
	"testing"

	"river-watch/internal/auth"
	"river-watch/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestStartLogin_ShouldIssueFreshStateOnEachInitiation(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/login")
	defer tc.Finish()

	var states, nonces []string
	tc.MockSession.EXPECT().SetOauthState(tc.AppContext, gomock.Any()).Times(2).
		Do(func(_ any, state string) { states = append(states, state) })
	tc.MockSession.EXPECT().SetOauthNonce(tc.AppContext, gomock.Any()).Times(2).
		Do(func(_ any, nonce string) { nonces = append(nonces, nonce) })
	tc.MockOIDC.EXPECT().AuthCodeURL(gomock.Any(), gomock.Any()).Times(2).
		Return("https://idp.example.com/auth")

	if _, err := auth.StartLogin(tc.AppContext); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := auth.StartLogin(tc.AppContext); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(states) != 2 || len(nonces) != 2 {
		t.Fatalf("expected two state/nonce pairs, got %d/%d", len(states), len(nonces))
	}

	// A second initiation must overwrite the pending pair with new values.
	if states[0] == states[1] {
		t.Error("expected a fresh state per initiation")
	}
	if nonces[0] == nonces[1] {
		t.Error("expected a fresh nonce per initiation")
	}
}
