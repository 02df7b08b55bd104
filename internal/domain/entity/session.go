package entity

// SessionStatus describes the admin session as derivable without a server
// round-trip: whether a stored token still validates locally, and which
// Authorization scheme it would be sent with. The server has the final say
// on the very next request.
type SessionStatus struct {
	Authenticated bool   `json:"authenticated"`
	Scheme        string `json:"scheme,omitempty"`
}
