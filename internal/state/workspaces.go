package state

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/hyprland-community/hyprmon/internal/hypr"
)

// WorkspaceFilter narrows the workspaces projection.
type WorkspaceFilter struct {
	// Monitor keeps only workspaces on the named monitor when non-empty.
	Monitor string
	// Special keeps only special (negative-id) workspaces when true,
	// only regular ones when false. Nil applies no special filter.
	Special *bool
}

// ProjectWorkspaces enriches the live workspaces array with
// shown/active derived from the monitors array and, when rules is
// non-nil, merges in the statically declared workspaces: live
// workspaces matching a rule get dynamic=false, unmatched ones
// dynamic=true, and rules with no live counterpart are appended as
// exists=false placeholder entries. The result is sorted ascending by
// id, entries without one last.
func ProjectWorkspaces(workspacesRaw, monitorsRaw json.RawMessage, filter WorkspaceFilter, rules []hypr.WorkspaceRule) ([]map[string]any, error) {
	active, err := activeWorkspaceIDs(monitorsRaw)
	if err != nil {
		return nil, err
	}

	var workspaces []map[string]any
	if err := json.Unmarshal(workspacesRaw, &workspaces); err != nil {
		return nil, &hypr.ProtocolError{Reason: "workspaces payload is not a json array", Err: err}
	}

	consumed := make([]bool, len(rules))
	result := []map[string]any{}
	for _, workspace := range workspaces {
		if filter.Monitor != "" {
			monitor, _ := asString(workspace["monitor"])
			if monitor != filter.Monitor {
				continue
			}
		}
		if filter.Special != nil {
			id, ok := asInt64(workspace["id"])
			if !ok || (id < 0) != *filter.Special {
				continue
			}
		}

		id, ok := asInt64(workspace["id"])
		if !ok {
			return nil, &StructuralError{Reason: "id and name of workspace"}
		}
		name, ok := asString(workspace["name"])
		if !ok {
			return nil, &StructuralError{Reason: "id and name of workspace"}
		}

		focused, shown := active[id]
		workspace["shown"] = shown
		workspace["active"] = focused
		workspace["exists"] = true
		if rules != nil {
			workspace["dynamic"] = !consumeRule(rules, consumed, id, name)
		}
		result = append(result, workspace)
	}

	// Declared workspaces that are not currently instantiated.
	for i, rule := range rules {
		if consumed[i] {
			continue
		}
		if filter.Monitor != "" && rule.Monitor != nil && *rule.Monitor != filter.Monitor {
			continue
		}

		entry := map[string]any{"dynamic": false, "exists": false}
		if rule.ID != nil {
			entry["id"] = *rule.ID
		}
		if rule.Name != nil {
			entry["name"] = *rule.Name
		}
		if rule.Monitor != nil {
			entry["monitor"] = *rule.Monitor
		}
		result = append(result, entry)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return sortID(result[i]) < sortID(result[j])
	})
	return result, nil
}

// activeWorkspaceIDs maps each workspace id currently assigned to a
// monitor to whether it is the focused one. A special workspace open
// on a monitor always counts as shown and active.
func activeWorkspaceIDs(monitorsRaw json.RawMessage) (map[int64]bool, error) {
	var monitors []map[string]any
	if err := json.Unmarshal(monitorsRaw, &monitors); err != nil {
		return nil, &hypr.ProtocolError{Reason: "monitors payload is not a json array", Err: err}
	}

	active := map[int64]bool{}
	for _, monitor := range monitors {
		if special, ok := nestedID(monitor, "specialWorkspace"); ok && special != 0 {
			active[special] = true
		}

		id, ok := nestedID(monitor, "activeWorkspace")
		if !ok {
			return nil, &StructuralError{Reason: "monitors to find shown workspaces"}
		}
		focused, ok := asBool(monitor["focused"])
		if !ok {
			return nil, &StructuralError{Reason: "monitors to find shown workspaces"}
		}
		active[id] = focused
	}
	return active, nil
}

// consumeRule marks the first unconsumed rule matching the live
// workspace and reports whether one was found. The id check runs
// before the name check, per live workspace, in declaration order.
func consumeRule(rules []hypr.WorkspaceRule, consumed []bool, id int64, name string) bool {
	for i, rule := range rules {
		if !consumed[i] && rule.ID != nil && *rule.ID == id {
			consumed[i] = true
			return true
		}
	}
	for i, rule := range rules {
		if !consumed[i] && rule.Name != nil && *rule.Name == name {
			consumed[i] = true
			return true
		}
	}
	return false
}

func sortID(entry map[string]any) int64 {
	if id, ok := asInt64(entry["id"]); ok {
		return id
	}
	return math.MaxInt64
}
