// Package state turns raw compositor payloads into the enriched,
// filtered documents hyprmon emits: workspaces gain shown/active and
// config-merge fields, clients gain monitorName, monitors pass
// through untouched.
package state

// Kind identifies one watchable resource kind.
type Kind int

const (
	Monitors Kind = iota
	Workspaces
	Clients
)

// Resource is the kind's name on the query socket.
func (k Kind) Resource() string {
	switch k {
	case Monitors:
		return "monitors"
	case Workspaces:
		return "workspaces"
	case Clients:
		return "clients"
	}
	return ""
}

func (k Kind) String() string { return k.Resource() }

var (
	monitorEvents = []string{"focusedmon", "monitorremoved", "monitoradded"}

	workspaceEvents = []string{
		"focusedmon", "monitorremoved", "monitoradded",
		"workspace", "createworkspace", "destroyworkspace", "moveworkspace",
		"openwindow", "closewindow", "movewindow", "activespecial",
	}

	clientEvents = []string{
		"openwindow", "closewindow", "movewindow",
		"changefloatingmode", "fullscreen", "windowtitle", "activewindowv2",
	}
)

// Events returns the event names that can change this kind's
// projection. An event outside the set never triggers a re-emission.
func (k Kind) Events() []string {
	switch k {
	case Monitors:
		return monitorEvents
	case Workspaces:
		return workspaceEvents
	case Clients:
		return clientEvents
	}
	return nil
}

// Triggers reports whether the named event belongs to this kind's set.
func (k Kind) Triggers(event string) bool {
	for _, name := range k.Events() {
		if name == event {
			return true
		}
	}
	return false
}
