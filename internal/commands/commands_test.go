package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/internal/config"
)

func quietLookup(extra map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		if key == config.EnvPrefix+"LOG_LEVEL" {
			return "error", true
		}
		value, ok := extra[key]
		return value, ok
	}
}

func execute(t *testing.T, lookup config.LookupFunc, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(lookup)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

const sampleJSON = `[{"id":0,"type":"text","label":"Name","placeholder":"Your name","required":true,"options":[]},` +
	`{"id":1,"type":"select","label":"Colour","placeholder":"","required":false,"options":["Red","Blue"]}]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRender_ToStdout(t *testing.T) {
	input := writeFile(t, "form-structure.json", sampleJSON)

	stdout, _, err := execute(t, quietLookup(nil), "render", input, "--title", "Signup")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>Signup</title>", `name="field_0"`, "Your name", "Red", "Select an option"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestRender_YAMLToFileWithConfigTitle(t *testing.T) {
	input := writeFile(t, "form-structure.yaml", "- id: 3\n  type: email\n  label: Email\n  placeholder: you@example.com\n  required: false\n  options: []\n")
	output := filepath.Join(t.TempDir(), "form.html")

	_, stderr, err := execute(t, quietLookup(map[string]string{config.EnvPrefix + "TITLE": "Newsletter"}), "render", input, "-o", output)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	page := string(data)
	if !strings.Contains(page, "<title>Newsletter</title>") || !strings.Contains(page, `type="email"`) {
		t.Fatalf("unexpected page:\n%s", page)
	}
	if !strings.Contains(stderr, "Form written to "+output) {
		t.Fatalf("expected confirmation on stderr, got %q", stderr)
	}
}

func TestRender_WatchNeedsOutput(t *testing.T) {
	input := writeFile(t, "form-structure.json", sampleJSON)
	_, _, err := execute(t, quietLookup(nil), "render", input, "--watch")
	if err == nil || !strings.Contains(err.Error(), "--watch requires --output") {
		t.Fatalf("expected watch error, got %v", err)
	}
}

func TestRender_MalformedInput(t *testing.T) {
	input := writeFile(t, "form-structure.json", `{"not":"an array"}`)
	if _, _, err := execute(t, quietLookup(nil), "render", input); err == nil {
		t.Fatalf("expected malformed document error")
	}
}

func TestRender_UnknownTheme(t *testing.T) {
	input := writeFile(t, "form-structure.json", sampleJSON)
	if _, _, err := execute(t, quietLookup(nil), "render", input, "--theme", "nope"); err == nil {
		t.Fatalf("expected unknown theme error")
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formbuilder.yaml")

	stdout, _, err := execute(t, quietLookup(nil), "init-config", path)
	if err != nil {
		t.Fatalf("init-config: %v", err)
	}
	if !strings.Contains(stdout, path) {
		t.Fatalf("unexpected output %q", stdout)
	}
	cfg, err := config.Load(path, "", func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.StorageKey != config.Default().StorageKey {
		t.Fatalf("storage key = %q", cfg.StorageKey)
	}

	if _, _, err := execute(t, quietLookup(nil), "init-config", path); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if _, _, err := execute(t, quietLookup(nil), "init-config", path, "--force"); err != nil {
		t.Fatalf("forced init-config: %v", err)
	}
}

func TestMissingConfigFile(t *testing.T) {
	input := writeFile(t, "form-structure.json", sampleJSON)
	_, _, err := execute(t, quietLookup(nil), "render", input, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatalf("expected missing config error")
	}
}
