// Package buildinfo holds the version stamped into the binary at link time:
//
//	go build -ldflags "-X github.com/matzehuels/pagesmith/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/pagesmith/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/pagesmith
package buildinfo

import "fmt"

// Linker-set values. Unstamped builds report "dev".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build information as reported by the HTTP API.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}

// Template is the cobra version template.
func Template() string {
	return "{{.Name}} " + Get().String() + "\n"
}
