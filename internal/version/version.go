package version

// Set at build time via -ldflags.
var (
	Version = "0.1.0"
	Commit  = ""
)

// Resolve returns the version string shown by --version, with the commit
// suffix when the build injected one.
func Resolve() string {
	base := Version
	if base == "" {
		base = "0.0.0"
	}

	if Commit == "" {
		return base
	}
	return base + "+" + Commit
}
