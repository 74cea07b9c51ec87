// internal/common/auth/auth.go
package auth

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"careers-builder/internal/common/config"

	"github.com/google/uuid"
)

// Authenticator abstracts credential verification and session token
// issue/validate so a real identity provider can be substituted without
// touching calling code.
type Authenticator interface {
	VerifyCredentials(username, password string) bool
	CreateSession() string
	VerifySession(token string) bool
}

// StaticAuthenticator validates a single configured admin credential pair
// and issues opaque, self-describing tokens. There is no server-side
// session store: validity is computed from the timestamp embedded in the
// token. No revocation, no per-user identity, no rate limiting.
type StaticAuthenticator struct {
	username string
	password string
	ttl      time.Duration

	now func() time.Time
}

// NewStatic builds an authenticator from the configured admin credentials.
func NewStatic(cfg config.AdminConfig, session config.SessionConfig) *StaticAuthenticator {
	return &StaticAuthenticator{
		username: cfg.Username,
		password: cfg.Password,
		ttl:      time.Duration(session.TTLHours) * time.Hour,
		now:      time.Now,
	}
}

// VerifyCredentials compares against the configured credential pair.
func (a *StaticAuthenticator) VerifyCredentials(username, password string) bool {
	return username == a.username && password == a.password
}

// CreateSession produces an opaque token: base64 of "{epoch-millis}-{random}".
func (a *StaticAuthenticator) CreateSession() string {
	raw := fmt.Sprintf("%d-%s", a.now().UnixMilli(), uuid.NewString())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// VerifySession decodes the token, extracts the embedded timestamp and
// accepts if elapsed time is under the configured window. Any decode
// failure, a missing separator or a non-numeric timestamp yields
// rejection.
func (a *StaticAuthenticator) VerifySession(token string) bool {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}

	parts := strings.SplitN(string(decoded), "-", 2)
	if len(parts) < 2 {
		return false
	}

	issuedMillis, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return false
	}

	age := a.now().UnixMilli() - issuedMillis
	return age < a.ttl.Milliseconds()
}
