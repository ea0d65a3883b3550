// operator-gui serves a small control page and turns its start/stop buttons
// into `operator-cli start` and `operator-cli stop` runs on the host.
package main

import (
	"os"

	"github.com/corey/operator-gui/cmd/operator-gui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
