package auth

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"careers-builder/internal/common/config"

	"github.com/stretchr/testify/assert"
)

func newTestAuthenticator() *StaticAuthenticator {
	return NewStatic(
		config.AdminConfig{Username: "admin", Password: "admin123"},
		config.SessionConfig{TTLHours: 24},
	)
}

func TestVerifyCredentials(t *testing.T) {
	a := newTestAuthenticator()

	assert.True(t, a.VerifyCredentials("admin", "admin123"))
	assert.False(t, a.VerifyCredentials("admin", "wrong"))
	assert.False(t, a.VerifyCredentials("root", "admin123"))
	assert.False(t, a.VerifyCredentials("", ""))
}

func TestSessionValidAtIssuance(t *testing.T) {
	a := newTestAuthenticator()

	token := a.CreateSession()
	assert.NotEmpty(t, token)
	assert.True(t, a.VerifySession(token))
}

func TestSessionExpiryWindow(t *testing.T) {
	a := newTestAuthenticator()

	issued := time.Now()
	a.now = func() time.Time { return issued }
	token := a.CreateSession()

	// Still valid one minute before the 24h cutoff.
	a.now = func() time.Time { return issued.Add(23*time.Hour + 59*time.Minute) }
	assert.True(t, a.VerifySession(token))

	// Invalid one minute past the cutoff.
	a.now = func() time.Time { return issued.Add(24*time.Hour + 1*time.Minute) }
	assert.False(t, a.VerifySession(token))
}

func TestSessionMalformedTokens(t *testing.T) {
	a := newTestAuthenticator()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not base64", "%%%not-base64%%%"},
		{"no separator", base64.StdEncoding.EncodeToString([]byte("1234567890"))},
		{"non-numeric timestamp", base64.StdEncoding.EncodeToString([]byte("abc-def"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, a.VerifySession(tt.token))
		})
	}
}

func TestSessionTokenShape(t *testing.T) {
	a := newTestAuthenticator()

	issued := time.Unix(1700000000, 0)
	a.now = func() time.Time { return issued }

	decoded, err := base64.StdEncoding.DecodeString(a.CreateSession())
	assert.NoError(t, err)
	assert.Contains(t, string(decoded), fmt.Sprintf("%d-", issued.UnixMilli()))
}
