package api

import (
	"encoding/json"

	"plastpack/internal/errors"
)

// decodeList accepts the two list shapes the service is known to return: a
// bare JSON array, or the {"results": [...], "count": n} offset-pagination
// envelope. Both decode to the inner slice; an empty array stays an empty
// slice, never substituted with placeholder data.
func decodeList[T any](raw []byte) ([]T, error) {
	if isJSONArray(raw) {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, errors.Wrap(err, "decode list")
		}

		return items, nil
	}

	var envelope struct {
		Results []T `json:"results"`
		Count   int `json:"count"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "decode list envelope")
	}

	return envelope.Results, nil
}

func isJSONArray(raw []byte) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return b == '['
		}
	}

	return false
}

// tokenProbes lists, in priority order, the response fields known
// deployments return the issued token under. The nested entries cover
// wrappers some auth backends put around the payload.
var tokenProbes = [][]string{
	{"token"},
	{"access"},
	{"access_token"},
	{"key"},
	{"auth_token"},
	{"auth", "token"},
	{"user", "token"},
	{"data", "token"},
}

// extractToken walks the probe table against a login response. A body that
// is a bare JSON string is itself the token.
func extractToken(raw []byte) (string, bool) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err == nil {
		for _, path := range tokenProbes {
			if token, ok := lookupString(payload, path); ok {
				return token, true
			}
		}

		return "", false
	}

	var bare string
	if err := json.Unmarshal(raw, &bare); err == nil && bare != "" {
		return bare, true
	}

	return "", false
}

func lookupString(payload map[string]any, path []string) (string, bool) {
	var current any = payload
	for _, key := range path {
		object, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = object[key]
		if !ok {
			return "", false
		}
	}

	token, ok := current.(string)
	if !ok || token == "" {
		return "", false
	}

	return token, true
}
