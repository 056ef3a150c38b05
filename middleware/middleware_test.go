package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := IssueSessionToken("session-123")
	require.NoError(t, err)

	id, err := ParseSessionToken(token)
	require.NoError(t, err)
	require.Equal(t, "session-123", id)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseSessionToken("not-a-token")
	require.Error(t, err)
}

func TestWithSessionMintsAndReusesSessions(t *testing.T) {
	var seen []string
	handler := WithSession(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		seen = append(seen, SessionIDFromContext(r.Context()))
	})

	// first request carries no token: a session is minted and returned
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil), nil)
	token := w.Header().Get("X-Session-Token")
	require.NotEmpty(t, token)
	require.Len(t, seen, 1)

	// second request presents the token and lands in the same session
	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r.Header.Set("X-Session-Token", token)
	handler(httptest.NewRecorder(), r, nil)

	require.Len(t, seen, 2)
	require.Equal(t, seen[0], seen[1])
}
