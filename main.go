// Command selectme is a playground for the dropdown widget.
package main

import "github.com/marcus/selectme/cmd"

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
