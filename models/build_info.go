package models

// BuildInfo carries immutable build-time metadata embedded into binaries.
// Values are injected by linker flags and shown in version output.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs [BuildInfo] from the provided build metadata.
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{version: version, date: date, commit: commit}
}

// Version returns the semantic version string of the build.
func (b BuildInfo) Version() string {
	return b.version
}

// Date returns the build timestamp string.
func (b BuildInfo) Date() string {
	return b.date
}

// Commit returns the source-control commit hash used for the build.
func (b BuildInfo) Commit() string {
	return b.commit
}
