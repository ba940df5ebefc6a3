package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"sqlitePath":  "planets.db",
			"autoMigrate": true,
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
			"rateLimit": map[string]any{
				"requestsPerSecond": 0,
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_SQLITEPATH", want: "storage.sqlitePath"},
		{envKey: "STORAGE_AUTOMIGRATE", want: "storage.autoMigrate"},
		{envKey: "HTTP_RATELIMIT_REQUESTSPERSECOND", want: "http.rateLimit.requestsPerSecond"},
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
