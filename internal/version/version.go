// Package version carries build metadata, overridden with -ldflags at release time.
package version

var (
	Version   = "1.0.0"
	Commit    = ""
	BuildDate = ""
)
