package main

import "github.com/hyprland-community/hyprmon/cmd"

func main() {
	cmd.Execute()
}
