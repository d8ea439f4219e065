package version

import "fmt"

// set by goreleaser via ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var FullVersion = fmt.Sprintf("%s build with %s on %s", Version, Commit, Date)
