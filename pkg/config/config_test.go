package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_ISSUER", "JWT_TTL_MINUTES", "UPLOAD_DIR", "MAX_UPLOAD_MB"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.JWTIssuer != "cvparse" {
		t.Errorf("JWTIssuer = %q, want cvparse", cfg.JWTIssuer)
	}
	if cfg.JWTTTLMinutes != 60 {
		t.Errorf("JWTTTLMinutes = %d, want 60", cfg.JWTTTLMinutes)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("UploadDir = %q, want uploads", cfg.UploadDir)
	}
	if cfg.MaxUploadMB != 15 {
		t.Errorf("MaxUploadMB = %d, want 15", cfg.MaxUploadMB)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_UPLOAD_MB", "32")
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.MaxUploadMB != 32 {
		t.Errorf("MaxUploadMB = %d, want 32", cfg.MaxUploadMB)
	}
	if cfg.JWTTTLMinutes != 60 {
		t.Errorf("JWTTTLMinutes = %d, want 60 (fallback on bad value)", cfg.JWTTTLMinutes)
	}
}
