package service

// TokenInspector performs local, synchronous checks on a stored token.
// No network round-trip is ever involved; decode failures fail closed.
type TokenInspector interface {
	// IsValid reports whether the token is usable. A three-segment signed
	// token is checked for a decodable payload and an unexpired "exp"
	// claim. Any other shape is accepted unconditionally; an opaque
	// server-side token can only be verified by the server.
	IsValid(token string) bool

	// AuthHeaderValue derives the Authorization header for the token:
	// "Bearer <token>" for decodable three-segment tokens, following the
	// JWT middleware convention, and "Token <token>" for opaque tokens,
	// following the DRF TokenAuthentication convention. The two schemes
	// are distinct upstream and must stay distinct here.
	AuthHeaderValue(token string) string
}
