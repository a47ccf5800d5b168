package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("ENV")
	os.Unsetenv("AI_MODEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.AIBaseURL != "https://api.openai.com/v1" {
		t.Errorf("expected default AI base URL, got %s", cfg.AIBaseURL)
	}
	if cfg.AIModel != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %s", cfg.AIModel)
	}
	if cfg.AITimeoutSeconds != 30 {
		t.Errorf("expected default AI timeout 30, got %d", cfg.AITimeoutSeconds)
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Error("expected default CORS origins to be set")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("AI_MODEL", "gpt-4o")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("AI_MODEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.AIModel != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %s", cfg.AIModel)
	}
}

func TestValidate_RequiresAIKeyOutsideDev(t *testing.T) {
	c := &Config{Env: "staging", AITimeoutSeconds: 30}
	if err := c.Validate(); err == nil {
		t.Error("expected error when AI_API_KEY is missing outside development")
	}

	c.AIAPIKey = "sk-test"
	if err := c.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_RequiresJWTSecretInProduction(t *testing.T) {
	c := &Config{Env: "production", AIAPIKey: "sk-test", AITimeoutSeconds: 30}
	if err := c.Validate(); err == nil {
		t.Error("expected error when JWT_SECRET is missing in production")
	}

	c.JWTSecret = "secret"
	if err := c.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development", AITimeoutSeconds: 30}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("development config should validate without AI key: %v", err)
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}
