package config

import (
	"testing"
)

func TestValidateYAMLContent_AcceptsFullConfig(t *testing.T) {
	t.Parallel()

	content := []byte(`server:
  port: 9090
store:
  path: "/var/lib/formulario/data.csv"
admin:
  token: "secreto"
`)

	cfg, err := ValidateYAMLContent(content)
	if err != nil {
		t.Fatalf("expected config to validate: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port = %d", cfg.Server.Port)
	}
	if cfg.Store.Path != "/var/lib/formulario/data.csv" {
		t.Fatalf("store path = %q", cfg.Store.Path)
	}
	if cfg.Admin.Token != "secreto" {
		t.Fatalf("admin token = %q", cfg.Admin.Token)
	}
}

func TestValidateYAMLContent_DefaultsApply(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(`{}`))
	if err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
	if cfg.Server.Port != 10000 {
		t.Fatalf("default port = %d, want 10000", cfg.Server.Port)
	}
	if cfg.Store.Path != "./data.csv" {
		t.Fatalf("default store path = %q", cfg.Store.Path)
	}
	if cfg.Admin.Token != "" {
		t.Fatalf("default admin token must be empty")
	}
}

func TestValidateYAMLContent_RejectsInvalidPort(t *testing.T) {
	t.Parallel()

	content := []byte(`server:
  port: 70000
store:
  path: "./data.csv"
`)

	if _, err := ValidateYAMLContent(content); err == nil {
		t.Fatalf("expected validation error for out-of-range port")
	}
}

func TestValidateYAMLContent_ExampleTemplateValidates(t *testing.T) {
	t.Parallel()

	if _, err := ValidateYAMLContent([]byte(ExampleYAML())); err != nil {
		t.Fatalf("example template must validate: %v", err)
	}
}
