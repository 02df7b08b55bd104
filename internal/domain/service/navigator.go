package service

// Navigator abstracts "where the operator currently is" in the back office
// and how an authentication failure sends them back to the login view.
// The CLI tracks a virtual route per command; a future web frontend would
// plug in browser navigation instead.
type Navigator interface {
	// Location returns the current virtual route, e.g. "/admin/products".
	Location() string

	// Navigate moves to the given route.
	Navigate(route string)
}
