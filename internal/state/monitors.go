package state

import "encoding/json"

// ProjectMonitors is a pass-through of the raw monitors array.
func ProjectMonitors(monitorsRaw json.RawMessage) (json.RawMessage, error) {
	return monitorsRaw, nil
}
