package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plastpack/internal/domain/entity"
)

func TestExtractToken_ProbeOrder(t *testing.T) {
	// When several known fields are present, the earliest probe wins.
	raw := []byte(`{"access":"second","token":"first","key":"third"}`)

	token, ok := extractToken(raw)
	require.True(t, ok)
	assert.Equal(t, "first", token)
}

func TestExtractToken_IgnoresNonStringValues(t *testing.T) {
	token, ok := extractToken([]byte(`{"token":12345,"access":"usable"}`))
	require.True(t, ok)
	assert.Equal(t, "usable", token)
}

func TestExtractToken_EmptyStringIsNotAToken(t *testing.T) {
	_, ok := extractToken([]byte(`{"token":""}`))
	assert.False(t, ok)
}

func TestDecodeList_RejectsMalformedPayload(t *testing.T) {
	_, err := decodeList[entity.Category]([]byte(`{"results": "not-a-list"}`))
	assert.Error(t, err)

	_, err = decodeList[entity.Category]([]byte(`<html>gateway error</html>`))
	assert.Error(t, err)
}
