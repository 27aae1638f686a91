package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	// t.Setenv registers the restore; the variable then has to be removed
	// so the defaults actually apply.
	for _, key := range []string{"PORT", "APP_ENV", "JWT_EXPIRATION_HOURS", "DB_HOST", "DB_NAME", "SMTP_PORT", "DOCUMENT_DIR", "JWT_SECRET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Port = %s, want 8000", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Error("default environment should be development")
	}
	if cfg.JWTExpirationHours != 6 {
		t.Errorf("JWTExpirationHours = %d, want 6", cfg.JWTExpirationHours)
	}
	if cfg.SMTP.Port != 587 {
		t.Errorf("SMTP.Port = %d, want 587", cfg.SMTP.Port)
	}
	if cfg.Database.DSN == "" {
		t.Error("DSN should be assembled from the database settings")
	}
	if cfg.DocumentDir != "documents" {
		t.Errorf("DocumentDir = %s, want documents", cfg.DocumentDir)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_EXPIRATION_HOURS", "12")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "clinic")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Port != "9001" {
		t.Errorf("Port = %s, want 9001", cfg.Port)
	}
	if cfg.IsDevelopment() {
		t.Error("production must not report development")
	}
	if cfg.JWTExpirationHours != 12 {
		t.Errorf("JWTExpirationHours = %d, want 12", cfg.JWTExpirationHours)
	}
	want := "db.internal"
	if cfg.Database.Host != want {
		t.Errorf("Database.Host = %s, want %s", cfg.Database.Host, want)
	}
}

func TestLoadConfigBadNumbers(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_HOURS", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Error("a non-numeric JWT_EXPIRATION_HOURS must fail")
	}
}
