package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foodhubdev/foodhub/app/utils/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSRFTokenFlow(t *testing.T) {
	store := sessions.NewCookieSessionStore([]byte("route-test-key"))
	server := httptest.NewServer(NewRouter(nil, store))
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/csrf")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		CSRFToken string `json:"csrfToken"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.CSRFToken)
	assert.Equal(t, body.CSRFToken, resp.Header.Get("X-CSRF-Token"))

	// Without the token every state-changing request is refused.
	bare, err := http.NewRequest(http.MethodPost, server.URL+"/api/auth/logout", nil)
	require.NoError(t, err)
	noToken, err := http.DefaultClient.Do(bare)
	require.NoError(t, err)
	noToken.Body.Close()
	assert.Equal(t, http.StatusForbidden, noToken.StatusCode)

	// Echoing the fetched token with its cookie gets through.
	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/auth/logout", nil)
	require.NoError(t, err)
	req.Header.Set("X-CSRF-Token", body.CSRFToken)
	for _, cookie := range resp.Cookies() {
		req.AddCookie(cookie)
	}
	withToken, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	withToken.Body.Close()
	assert.Equal(t, http.StatusOK, withToken.StatusCode)
}
