package globals

import "os"

// SessionSecret signs the anonymous storefront session tokens.
var SessionSecret = func() []byte {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("dev-session-secret") // override via SESSION_SECRET in production
}()

// Context keys
type ContextKey string

const SessionIDKey ContextKey = "sessionId"
