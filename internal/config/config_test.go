package config

import (
	"os"
	"testing"
	"time"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("could not chdir back to original dir: %v", err)
		}
	})
}

func requiredEnv() map[string]string {
	return map[string]string{
		"HEYGEN_API_KEY":            "key-123",
		"MARIADB_DSN":               "user:pass@tcp(localhost:3306)/db",
		"MARIADB_MAX_OPEN_CONN":     "10",
		"MARIADB_MAX_IDLE_CONNS":    "5",
		"MARIADB_CONN_MAX_LIFETIME": "30",
		"SERVER_PORT":               "8080",
	}
}

func TestLoad_Success(t *testing.T) {
	// Switch to a temp directory to avoid loading a real .env
	chdirTemp(t)

	for k, v := range requiredEnv() {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HeyGenAPIKey != "key-123" {
		t.Errorf("HeyGenAPIKey: expected %q, got %q", "key-123", cfg.HeyGenAPIKey)
	}
	if cfg.HeyGenBaseURL != "https://api.heygen.com" {
		t.Errorf("HeyGenBaseURL: expected default, got %q", cfg.HeyGenBaseURL)
	}
	if cfg.HeyGenUploadURL != "https://upload.heygen.com" {
		t.Errorf("HeyGenUploadURL: expected default, got %q", cfg.HeyGenUploadURL)
	}
	if cfg.MaxOpenConns != 10 {
		t.Errorf("MaxOpenConns: expected %d, got %d", 10, cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns != 5 {
		t.Errorf("MaxIdleConns: expected %d, got %d", 5, cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != 30*time.Second {
		t.Errorf("ConnMaxLifetime: expected %v, got %v", 30*time.Second, cfg.ConnMaxLifetime)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort: expected %d, got %d", 8080, cfg.ServerPort)
	}
	if cfg.ArchiveBucket != "videos" {
		t.Errorf("ArchiveBucket: expected default %q, got %q", "videos", cfg.ArchiveBucket)
	}
}

func TestLoad_Overrides(t *testing.T) {
	chdirTemp(t)

	for k, v := range requiredEnv() {
		t.Setenv(k, v)
	}
	t.Setenv("HEYGEN_BASE_URL", "http://localhost:9999")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("ARCHIVE_BUCKET", "renders")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HeyGenBaseURL != "http://localhost:9999" {
		t.Errorf("HeyGenBaseURL: expected override, got %q", cfg.HeyGenBaseURL)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr: expected %q, got %q", "localhost:6379", cfg.RedisAddr)
	}
	if cfg.ArchiveBucket != "renders" {
		t.Errorf("ArchiveBucket: expected %q, got %q", "renders", cfg.ArchiveBucket)
	}
}

func TestLoad_MissingRequiredVars(t *testing.T) {
	cases := []struct {
		missingKey string
		wantErr    string
	}{
		{"HEYGEN_API_KEY", "HEYGEN_API_KEY is required"},
		{"MARIADB_DSN", "MARIADB_DSN is required"},
		{"MARIADB_MAX_OPEN_CONN", "MARIADB_MAX_OPEN_CONN is required"},
		{"MARIADB_MAX_IDLE_CONNS", "MARIADB_MAX_IDLE_CONNS is required"},
		{"MARIADB_CONN_MAX_LIFETIME", "MARIADB_CONN_MAX_LIFETIME is required"},
		{"SERVER_PORT", "SERVER_PORT is required"},
	}

	for _, tc := range cases {
		t.Run(tc.missingKey, func(t *testing.T) {
			// Isolate .env loading
			chdirTemp(t)

			for k, v := range requiredEnv() {
				if k == tc.missingKey {
					if err := os.Unsetenv(k); err != nil {
						t.Fatalf("could not unset key %s in env: %v", k, err)
					}
				} else {
					t.Setenv(k, v)
				}
			}

			cfg, err := Load()
			if err == nil {
				t.Fatalf("expected error for missing %s, got nil", tc.missingKey)
			}
			if err.Error() != tc.wantErr {
				t.Errorf("error = %q; want %q", err.Error(), tc.wantErr)
			}
			if cfg != nil {
				t.Errorf("expected cfg nil on error, got %#v", cfg)
			}
		})
	}
}
