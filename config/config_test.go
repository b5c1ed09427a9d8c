package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STUDI_AUTH_JWT_SECRET", "test-secret-mit-laenge")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, erwartet 8080", cfg.Server.Port)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q, erwartet localhost:6379", cfg.Redis.Addr)
	}
	if cfg.Database.MaxOpenConns != 25 || cfg.Database.MaxIdleConns != 10 {
		t.Errorf("Pool = %d/%d, erwartet 25/10", cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	}
	if cfg.Database.ConnMaxLifetime != 60 || cfg.Database.ConnMaxIdleTime != 30 {
		t.Errorf("Lebensdauer = %d/%d Minuten, erwartet 60/30",
			cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime)
	}
	if cfg.Auth.AccessTokenTTL != 15*time.Minute {
		t.Errorf("AccessTokenTTL = %v, erwartet 15m", cfg.Auth.AccessTokenTTL)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("STUDI_AUTH_JWT_SECRET", "test-secret-mit-laenge")
	t.Setenv("STUDI_REDIS_ADDR", "redis.intern:6380")
	t.Setenv("STUDI_DB_MAX_OPEN_CONNS", "50")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Redis.Addr != "redis.intern:6380" {
		t.Errorf("Redis.Addr = %q, erwartet redis.intern:6380", cfg.Redis.Addr)
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("MaxOpenConns = %d, erwartet 50", cfg.Database.MaxOpenConns)
	}
}

func TestValidateRejectsShortSecret(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Auth:   AuthConfig{JWTSecret: "zu-kurz"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate akzeptiert zu kurzes jwt_secret")
	}

	cfg.Auth.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate akzeptiert leeres jwt_secret")
	}
}
