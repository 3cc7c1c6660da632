package state

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/hyprland-community/hyprmon/internal/hypr"
)

// ClientFilter narrows the clients projection.
type ClientFilter struct {
	// Monitor keeps only clients on the named monitor when non-empty.
	Monitor string
	// Workspace keeps only clients on the given workspace: either a
	// bare id ("3") or a name ("name:web"). Empty applies no filter.
	Workspace string
}

// ProjectClients attaches monitorName to each live client, resolved
// through the monitors array, and applies the filters. Live order is
// preserved; no sort is applied.
func ProjectClients(clientsRaw, monitorsRaw json.RawMessage, filter ClientFilter) ([]map[string]any, error) {
	names, err := monitorNames(monitorsRaw)
	if err != nil {
		return nil, err
	}

	var clients []map[string]any
	if err := json.Unmarshal(clientsRaw, &clients); err != nil {
		return nil, &hypr.ProtocolError{Reason: "clients payload is not a json array", Err: err}
	}

	result := []map[string]any{}
	for _, client := range clients {
		if filter.Workspace != "" && !onWorkspace(client, filter.Workspace) {
			continue
		}

		monitorID, ok := asInt64(client["monitor"])
		if !ok {
			// No monitor association to filter on.
			if filter.Monitor == "" {
				result = append(result, client)
			}
			continue
		}
		name, ok := names[monitorID]
		if !ok {
			if filter.Monitor == "" {
				result = append(result, client)
			}
			continue
		}

		client["monitorName"] = name
		if filter.Monitor == "" || filter.Monitor == name {
			result = append(result, client)
		}
	}
	return result, nil
}

// monitorNames maps monitor ids to monitor names.
func monitorNames(monitorsRaw json.RawMessage) (map[int64]string, error) {
	var monitors []map[string]any
	if err := json.Unmarshal(monitorsRaw, &monitors); err != nil {
		return nil, &hypr.ProtocolError{Reason: "monitors payload is not a json array", Err: err}
	}

	names := map[int64]string{}
	for _, monitor := range monitors {
		id, ok := asInt64(monitor["id"])
		if !ok {
			return nil, &StructuralError{Reason: "monitor names for filtering"}
		}
		name, ok := asString(monitor["name"])
		if !ok {
			return nil, &StructuralError{Reason: "monitor names for filtering"}
		}
		names[id] = name
	}
	return names, nil
}

// onWorkspace matches a client against a workspace filter. Clients
// without workspace info never match; a filter that is neither a bare
// integer nor name:-prefixed matches nothing.
func onWorkspace(client map[string]any, filter string) bool {
	workspace, ok := client["workspace"].(map[string]any)
	if !ok {
		return false
	}
	id, ok := asInt64(workspace["id"])
	if !ok {
		return false
	}
	name, ok := asString(workspace["name"])
	if !ok {
		return false
	}

	if wanted, isName := strings.CutPrefix(filter, "name:"); isName {
		return wanted == name
	}
	wantedID, err := strconv.ParseInt(filter, 10, 64)
	if err != nil {
		return false
	}
	return wantedID == id
}
