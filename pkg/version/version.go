// Package version reports the drillchart build version.
package version

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/drillchart/pkg/version.version=v1.2.3"
var version = "dev" //nolint:gochecknoglobals // Overridden via ldflags

// GetVersion returns the build version, "dev" for local builds.
func GetVersion() string {
	return version
}
