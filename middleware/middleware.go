package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"inkpress/globals"
	"inkpress/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// SessionClaims scope a cart to one anonymous storefront visitor. There is
// no login on the storefront, so the token carries a session id and nothing
// else.
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs a token for a new storefront session.
func IssueSessionToken(sessionID string) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.SessionSecret)
}

// ParseSessionToken returns the session id carried by a token, or an error
// when the token is missing, malformed or expired.
func ParseSessionToken(tokenString string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return globals.SessionSecret, nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.SessionID, nil
}

// WithSession resolves the cart session for the request, minting a fresh one
// when the client presents no usable token. The token rides the
// X-Session-Token header in both directions.
func WithSession(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sessionID := ""
		if tok := r.Header.Get("X-Session-Token"); tok != "" {
			if id, err := ParseSessionToken(tok); err == nil {
				sessionID = id
			}
		}
		if sessionID == "" {
			sessionID = utils.GetUUID()
			if tok, err := IssueSessionToken(sessionID); err == nil {
				w.Header().Set("X-Session-Token", tok)
			}
		}

		ctx := context.WithValue(r.Context(), globals.SessionIDKey, sessionID)
		next(w, r.WithContext(ctx), ps)
	}
}

// SessionIDFromContext returns the session id placed by WithSession, or ""
// outside of a session-scoped handler.
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(globals.SessionIDKey).(string)
	return id
}
