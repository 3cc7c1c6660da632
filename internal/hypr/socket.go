// Package hypr implements the Hyprland IPC surface: socket path
// resolution, batched queries over .socket.sock, the .socket2.sock
// event stream, and the workspace declarations of hyprland.conf.
package hypr

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	instanceEnv   = "HYPRLAND_INSTANCE_SIGNATURE"
	runtimeDirEnv = "XDG_RUNTIME_DIR"

	// Hyprland's pre-XDG socket directory, still used as fallback.
	legacyRuntimeDir = "/tmp/hypr"
)

// QuerySocket and EventSocket name the two IPC sockets of a Hyprland
// instance: request/response and the live event stream.
const (
	QuerySocket = "socket"
	EventSocket = "socket2"
)

// SocketPath resolves the filesystem path of the named IPC socket for
// the running Hyprland instance. It fails with a ConfigError when the
// instance signature is not in the environment, i.e. Hyprland is not
// running or the caller is outside its session.
func SocketPath(name string) (string, error) {
	instance := os.Getenv(instanceEnv)
	if instance == "" {
		return "", &ConfigError{Reason: instanceEnv + " is not set, is Hyprland running?"}
	}

	dir := legacyRuntimeDir
	if runtime := os.Getenv(runtimeDirEnv); runtime != "" {
		candidate := filepath.Join(runtime, "hypr")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			dir = candidate
		}
	}

	return filepath.Join(dir, instance, fmt.Sprintf(".%s.sock", name)), nil
}

// ConfigPath resolves the hyprland.conf location from XDG_CONFIG_HOME,
// falling back to $HOME/.config.
func ConfigPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home := os.Getenv("HOME")
		if home == "" {
			return "", &ConfigError{Reason: "$HOME is not set, cannot locate hyprland config"}
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "hypr", "hyprland.conf"), nil
}
