package hypr

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyprland.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWorkspaceConfig(t *testing.T) {
	path := writeConfig(t, "workspace = 3, monitor:DP-1\nworkspace_swipe = 1\nworkspace=name:web\n")

	rules, err := LoadWorkspaceConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules (workspace_swipe excluded), got %d", len(rules))
	}

	if rules[0].ID == nil || *rules[0].ID != 3 {
		t.Errorf("rule 0 id: got %v", rules[0].ID)
	}
	if rules[0].Name != nil {
		t.Errorf("rule 0 must not have a name, got %q", *rules[0].Name)
	}
	if rules[0].Monitor == nil || *rules[0].Monitor != "DP-1" {
		t.Errorf("rule 0 monitor: got %v", rules[0].Monitor)
	}

	if rules[1].Name == nil || *rules[1].Name != "web" {
		t.Errorf("rule 1 name: got %v", rules[1].Name)
	}
	if rules[1].ID != nil {
		t.Errorf("rule 1 must not have an id, got %d", *rules[1].ID)
	}
	if rules[1].Monitor != nil {
		t.Errorf("rule 1 monitor must be unset, got %q", *rules[1].Monitor)
	}
}

func TestLoadWorkspaceConfig_LastMonitorWins(t *testing.T) {
	path := writeConfig(t, "workspace = 1, monitor:DP-1, monitor:DP-2\n")

	rules, err := LoadWorkspaceConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 || rules[0].Monitor == nil || *rules[0].Monitor != "DP-2" {
		t.Fatalf("unexpected rules: %+v", rules)
	}
}

func TestLoadWorkspaceConfig_PreservesOrderWithoutDedup(t *testing.T) {
	path := writeConfig(t, "workspace = 2\nworkspace = 1\nworkspace = 1\n")

	rules, err := LoadWorkspaceConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	if *rules[0].ID != 2 || *rules[1].ID != 1 || *rules[2].ID != 1 {
		t.Errorf("file order not preserved: %+v", rules)
	}
}

func TestLoadWorkspaceConfig_IndentedDeclarations(t *testing.T) {
	path := writeConfig(t, "  workspace = 7\n")

	rules, err := LoadWorkspaceConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 || *rules[0].ID != 7 {
		t.Fatalf("unexpected rules: %+v", rules)
	}
}

func TestLoadWorkspaceConfig_BadIDAbortsLoad(t *testing.T) {
	path := writeConfig(t, "workspace = 1\nworkspace = banana\n")

	_, err := LoadWorkspaceConfig(path)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "workspace = banana") {
		t.Errorf("error should name the offending line, got %q", got)
	}
}

func TestLoadWorkspaceConfig_NegativeIDRejected(t *testing.T) {
	path := writeConfig(t, "workspace = -1\n")

	_, err := LoadWorkspaceConfig(path)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestLoadWorkspaceConfig_MissingFile(t *testing.T) {
	_, err := LoadWorkspaceConfig(filepath.Join(t.TempDir(), "nope.conf"))
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

