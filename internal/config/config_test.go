package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		App:   AppConfig{Env: "local", Port: 8080},
		DB:    DBConfig{Host: "localhost", Port: 5432, User: "crm", Name: "crm", SSLMode: "disable"},
		Redis: RedisConfig{Host: "localhost", Port: 6379},
		Auth:  AuthConfig{JWTSecret: "secret"},
	}
}

func TestValidate_OK(t *testing.T) {
	c := validConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidate_DefaultsTokenTTLs(t *testing.T) {
	c := validConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Auth.RegisterTokenTTL != time.Hour {
		t.Fatalf("expected 1h register TTL, got %v", c.Auth.RegisterTokenTTL)
	}
	if c.Auth.LoginTokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h login TTL, got %v", c.Auth.LoginTokenTTL)
	}
}

func TestValidate_DefaultsUploadPolicy(t *testing.T) {
	c := validConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Upload.MaxBytes != 1<<20 {
		t.Fatalf("expected 1MB cap, got %d", c.Upload.MaxBytes)
	}
	if c.Upload.Dir == "" {
		t.Fatalf("expected upload dir default")
	}
}

func TestValidate_RejectsMissingSecret(t *testing.T) {
	c := validConfig()
	c.Auth.JWTSecret = ""
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for missing JWT secret")
	}
}

func TestValidate_ProductionRequiresSSLMode(t *testing.T) {
	c := validConfig()
	c.App.Env = "production"
	c.DB.SSLMode = ""
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for missing sslmode in production")
	}
}

func TestValidate_RejectsUnknownEnv(t *testing.T) {
	c := validConfig()
	c.App.Env = "qa"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for unknown env")
	}
}
