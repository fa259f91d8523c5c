package version

import "fmt"

// Version, GitCommit, and BuildDate are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/meridian-net/netcollector/pkg/version.Version=v1.0.0 \
//	  -X github.com/meridian-net/netcollector/pkg/version.GitCommit=abc1234 \
//	  -X github.com/meridian-net/netcollector/pkg/version.BuildDate=2026-07-31"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info formats the build metadata for the version command and startup logs.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
