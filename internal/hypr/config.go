package hypr

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WorkspaceRule is one `workspace = ...` declaration from
// hyprland.conf. Exactly one of ID and Name is set, chosen by the
// declaration's first attribute. Rules are loaded once at startup and
// never mutated.
type WorkspaceRule struct {
	ID      *int64
	Name    *string
	Monitor *string
}

// LoadWorkspaceConfig parses the workspace declarations out of the
// config file at path, in file order, without deduplication. Only
// lines starting with "workspace " or "workspace=" count; longer
// keywords such as workspace_swipe do not.
func LoadWorkspaceConfig(path string) ([]WorkspaceRule, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Reason: "couldn't read hyprland config", Err: err}
	}

	var rules []WorkspaceRule
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "workspace ") && !strings.HasPrefix(trimmed, "workspace=") {
			continue
		}

		rule, err := parseWorkspaceRule(trimmed)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func parseWorkspaceRule(line string) (WorkspaceRule, error) {
	_, attrs, found := strings.Cut(line, "=")
	if !found {
		return WorkspaceRule{}, &ConfigError{Reason: fmt.Sprintf("couldn't find '=' in workspace declaration %q", line)}
	}

	var rule WorkspaceRule
	for i, attr := range strings.Split(attrs, ",") {
		attr = strings.TrimSpace(attr)

		if i == 0 {
			if name, ok := strings.CutPrefix(attr, "name:"); ok {
				rule.Name = &name
				continue
			}
			id, err := strconv.ParseUint(attr, 10, 63)
			if err != nil {
				return WorkspaceRule{}, &ConfigError{Reason: fmt.Sprintf("workspace id is not an integer in %q", line), Err: err}
			}
			signed := int64(id)
			rule.ID = &signed
			continue
		}

		// Last monitor: attribute wins.
		if monitor, ok := strings.CutPrefix(attr, "monitor:"); ok {
			rule.Monitor = &monitor
		}
	}
	return rule, nil
}
