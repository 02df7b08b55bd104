package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "http://localhost:8000/api/v1",
			"timeout": "30s",
		},
		"credentials": map[string]any{
			"path": "",
		},
		"admin": map[string]any{
			"loginRoute": "/admin/login",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "API_TIMEOUT", want: "api.timeout"},
		{envKey: "CREDENTIALS_PATH", want: "credentials.path"},
		{envKey: "ADMIN_LOGINROUTE", want: "admin.loginRoute"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
