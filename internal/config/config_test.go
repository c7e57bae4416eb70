package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/internal/config"
	"github.com/goliatone/go-formbuilder/pkg/storage"
)

func env(values map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", "", env(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Layering(t *testing.T) {
	file := writeFile(t, "formbuilder.yaml", `
storage:
  driver: sqlite
  path: data/forms.db
storage_key: signup
title: Sign up
theme:
  name: classic
  variant: dark
notice_ttl: 5s
log:
  level: debug
`)
	dotenv := writeFile(t, ".env", "FORMBUILDER_TITLE=From dotenv\nFORMBUILDER_LISTEN=:9000\n")

	cfg, err := config.Load(file, dotenv, env(map[string]string{
		"FORMBUILDER_LISTEN":          ":7000",
		"FORMBUILDER_LOG_DEVELOPMENT": "true",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := config.Default()
	want.Storage = storage.Config{Driver: "sqlite", Path: "data/forms.db"}
	want.StorageKey = "signup"
	want.Title = "From dotenv"
	want.Theme = config.Theme{Name: "classic", Variant: "dark"}
	want.NoticeTTL = 5 * time.Second
	want.Log = config.Log{Level: "debug", Development: true}
	want.Listen = ":7000"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingDotenvIsIgnored(t *testing.T) {
	if _, err := config.Load("", filepath.Join(t.TempDir(), ".env"), env(nil)); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]struct {
		path string
		env  map[string]string
	}{
		"missing file":     {path: filepath.Join(t.TempDir(), "nope.yaml")},
		"bad driver":       {env: map[string]string{"FORMBUILDER_STORAGE_DRIVER": "redis"}},
		"file needs path":  {env: map[string]string{"FORMBUILDER_STORAGE_PATH": ""}},
		"empty key":        {env: map[string]string{"FORMBUILDER_STORAGE_KEY": " "}},
		"bad ttl":          {env: map[string]string{"FORMBUILDER_NOTICE_TTL": "soon"}},
		"bad bool":         {env: map[string]string{"FORMBUILDER_LOG_DEVELOPMENT": "maybe"}},
		"non-positive ttl": {env: map[string]string{"FORMBUILDER_NOTICE_TTL": "0s"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := config.Load(tt.path, "", env(tt.env)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formbuilder.yaml")
	cfg := config.Default()
	cfg.Title = "Saved"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := config.Load(path, "", env(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
