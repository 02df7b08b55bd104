package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	tracker := NewTracker(nil)
	assert.Equal(t, "/", tracker.Location())

	tracker.Navigate("/admin/products")
	assert.Equal(t, "/admin/products", tracker.Location())

	// Re-navigating to the same route is a no-op.
	tracker.Navigate("/admin/products")
	assert.Equal(t, "/admin/products", tracker.Location())
}
