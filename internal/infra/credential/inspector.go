package credential

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	jwtSegments = 3

	schemeBearer = "Bearer "
	schemeOpaque = "Token "
)

// Inspector validates stored tokens locally and derives the Authorization
// header scheme from the token's shape.
type Inspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

// NewInspector is the constructor for Inspector.
func NewInspector() *Inspector {
	return &Inspector{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// IsValid reports whether the token is still usable. Three-segment tokens
// must carry a decodable claims segment with an unexpired "exp"; a missing
// "exp" means the token never expires. Any other shape is accepted as-is
// because an opaque credential can only be verified by the server.
func (i *Inspector) IsValid(token string) bool {
	claims, shape := i.decodeClaims(token)
	switch shape {
	case shapeOpaque:
		return true
	case shapeMalformed:
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false
	}
	if exp == nil {
		return true
	}

	return i.now().Before(exp.Time)
}

// AuthHeaderValue returns the value for the Authorization header. Signed
// three-segment tokens use the Bearer scheme, everything else the opaque
// Token scheme used by DRF-style token auth. Do not collapse the two: the
// upstream middlewares accept different prefixes.
func (i *Inspector) AuthHeaderValue(token string) string {
	if _, shape := i.decodeClaims(token); shape == shapeSigned {
		return schemeBearer + token
	}

	return schemeOpaque + token
}

type tokenShape int

const (
	shapeOpaque tokenShape = iota // not three segments, cannot inspect
	shapeSigned                   // three segments with decodable claims
	shapeMalformed                // three segments but claims do not decode
)

// decodeClaims classifies the token and, for the signed shape, returns the
// decoded claims of the middle segment. Decode failures never escape as
// errors; they downgrade to the malformed shape.
func (i *Inspector) decodeClaims(token string) (jwt.MapClaims, tokenShape) {
	parts := strings.Split(token, ".")
	if len(parts) != jwtSegments {
		return nil, shapeOpaque
	}

	raw, err := i.parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, shapeMalformed
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, shapeMalformed
	}

	return claims, shapeSigned
}
