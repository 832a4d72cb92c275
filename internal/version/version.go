// Package version holds the build version, set via ldflags on release.
package version

var Version = "dev"
