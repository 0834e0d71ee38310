// Package buildinfo carries the release identifiers stamped in with -ldflags "-X".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns the version, or the commit for untagged builds.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}
