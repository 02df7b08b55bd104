package credential

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test_secret"))
	require.NoError(t, err)

	return token
}

func TestInspector_IsValid_SignedTokenExpiry(t *testing.T) {
	inspector := NewInspector()

	future := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	assert.True(t, inspector.IsValid(future))

	past := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	assert.False(t, inspector.IsValid(past))

	// A signed token without exp never expires client-side.
	noExp := signedToken(t, jwt.MapClaims{"sub": "admin"})
	assert.True(t, inspector.IsValid(noExp))
}

func TestInspector_IsValid_OpaqueTokenAlwaysAccepted(t *testing.T) {
	inspector := NewInspector()

	// Opaque credentials cannot be inspected client-side; only the server
	// can reject them.
	assert.True(t, inspector.IsValid("9c4ab1f3e2d54c76a8b9"))
	assert.True(t, inspector.IsValid("two.segments"))
	assert.True(t, inspector.IsValid("has.four.dot.segments"))
	assert.True(t, inspector.IsValid(""))
}

func TestInspector_IsValid_MalformedClaimsFailClosed(t *testing.T) {
	inspector := NewInspector()

	// Middle segment is not valid base64.
	assert.False(t, inspector.IsValid("aaa.!!!.ccc"))

	// Middle segment decodes but is not JSON.
	assert.False(t, inspector.IsValid("aaa.bm90IGpzb24.ccc"))
}

func TestInspector_IsValid_ExpiredByFrozenClock(t *testing.T) {
	inspector := NewInspector()
	token := signedToken(t, jwt.MapClaims{"exp": int64(1700000000)})

	inspector.now = func() time.Time { return time.Unix(1699999999, 0) }
	assert.True(t, inspector.IsValid(token))

	inspector.now = func() time.Time { return time.Unix(1700000001, 0) }
	assert.False(t, inspector.IsValid(token))
}

func TestInspector_AuthHeaderValue_Schemes(t *testing.T) {
	inspector := NewInspector()

	signed := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	assert.Equal(t, "Bearer "+signed, inspector.AuthHeaderValue(signed))

	// DRF-style opaque tokens use the Token scheme.
	assert.Equal(t, "Token 9c4ab1f3e2d54c76a8b9", inspector.AuthHeaderValue("9c4ab1f3e2d54c76a8b9"))

	// Even an expired signed token still derives the Bearer scheme; expiry
	// is a separate question from shape.
	expired := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	assert.Equal(t, "Bearer "+expired, inspector.AuthHeaderValue(expired))

	// Three segments that do not decode fall back to the opaque scheme.
	assert.Equal(t, "Token aaa.!!!.ccc", inspector.AuthHeaderValue("aaa.!!!.ccc"))
}
