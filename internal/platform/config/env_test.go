package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Dice  int    `env:"TEST_DICE" envDefault:"5"`
	Label string `env:"TEST_LABEL"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Dice != 5 {
		t.Fatalf("expected default dice 5, got %d", cfg.Dice)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("TEST_LABEL", "unprefixed")
	t.Setenv("GREED_TEST_LABEL", "prefixed")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Label != "prefixed" {
		t.Fatalf("expected prefixed label, got %q", cfg.Label)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("GREED_TEST_DICE", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
