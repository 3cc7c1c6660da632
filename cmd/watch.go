package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/hyprland-community/hyprmon/internal/hypr"
	"github.com/hyprland-community/hyprmon/internal/output"
	"github.com/hyprland-community/hyprmon/internal/state"
)

// watcher drives one resource kind: an initial projection, then a
// re-projection each time an event batch contains a name from the
// kind's trigger set.
type watcher struct {
	kind      state.Kind
	workspace state.WorkspaceFilter
	client    state.ClientFilter
	rules     []hypr.WorkspaceRule
	once      bool
}

// run performs the initial emission and, unless once is set, blocks
// on the event socket for the process lifetime. It returns only on
// fatal conditions: event socket unavailable or closed by the
// compositor. Errors inside the loop are logged and the loop keeps
// going; a query hiccup skips that emission, nothing more.
func (w *watcher) run() error {
	if err := w.emit(); err != nil {
		if w.once {
			return err
		}
		log.Print(err)
	}
	if w.once {
		return nil
	}

	conn, err := hypr.Listen()
	if err != nil {
		return err
	}
	defer conn.Close()

	for {
		events, err := conn.Read()
		if err != nil {
			log.Print(err)
			continue
		}
		if len(events) == 0 {
			return fmt.Errorf("hyprland event socket has closed")
		}

		// At most one emission per batch: each projection re-queries
		// current state, so later events in the batch are already
		// reflected in it.
		for _, event := range events {
			if w.kind.Triggers(event.Name) {
				if err := w.emit(); err != nil {
					log.Print(err)
				}
				break
			}
		}
	}
}

func (w *watcher) emit() error {
	result, err := project(w.kind, w.workspace, w.client, w.rules)
	if err != nil {
		return err
	}
	return output.Print(result)
}

// project fetches the kind's live state and runs its enrichment.
func project(kind state.Kind, workspace state.WorkspaceFilter, client state.ClientFilter, rules []hypr.WorkspaceRule) (interface{}, error) {
	switch kind {
	case state.Monitors:
		docs, err := queryDocs(1, "monitors")
		if err != nil {
			return nil, err
		}
		return state.ProjectMonitors(docs[0])
	case state.Workspaces:
		docs, err := queryDocs(2, "workspaces", "monitors")
		if err != nil {
			return nil, err
		}
		return state.ProjectWorkspaces(docs[0], docs[1], workspace, rules)
	case state.Clients:
		docs, err := queryDocs(2, "clients", "monitors")
		if err != nil {
			return nil, err
		}
		return state.ProjectClients(docs[0], docs[1], client)
	}
	return nil, fmt.Errorf("unknown resource kind %d", kind)
}

// queryDocs runs a batch query and guards against a short response
// before the projections index into it.
func queryDocs(want int, resources ...string) ([]json.RawMessage, error) {
	docs, err := hypr.Query(resources...)
	if err != nil {
		return nil, err
	}
	if len(docs) < want {
		return nil, fmt.Errorf("query socket returned %d documents, expected %d", len(docs), want)
	}
	return docs, nil
}

// loadRules reads the workspace declarations from hyprland.conf.
func loadRules() ([]hypr.WorkspaceRule, error) {
	path, err := hypr.ConfigPath()
	if err != nil {
		return nil, err
	}
	return hypr.LoadWorkspaceConfig(path)
}

// specialFilter translates a bool flag into the tri-state special
// filter: nil unless the flag was given explicitly.
func specialFilter(changed bool, value bool) *bool {
	if !changed {
		return nil
	}
	return &value
}
