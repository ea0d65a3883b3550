// Package version carries build metadata injected with -ldflags.
package version

import "fmt"

// Set at build time:
//
//	go build -ldflags "-X github.com/corey/operator-gui/internal/version.Version=v1.2.0 -X ...Commit=abc123"
var (
	Version = "dev"
	Commit  = ""
)

// String returns the version, with the short commit when known.
func String() string {
	if Commit == "" {
		return Version
	}
	short := Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, short)
}
