// Package version carries the build metadata stamped into the binary at link
// time (-ldflags -X). It is reported on startup and by the health endpoint.
package version

var (
	Version   string = "dev"
	GitCommit string = "unknown"
	BuildTime string = "unknown"
)

func GetVersion() string {
	return Version
}

func GetGitCommit() string {
	return GitCommit
}

func GetBuildTime() string {
	return BuildTime
}

func GetFullVersion() string {
	return Version + " (commit: " + GitCommit + ", built: " + BuildTime + ")"
}
