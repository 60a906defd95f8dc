package version

// version is set at build time with
// -ldflags "-X github.com/cbodonnell/civboard/pkg/version.version=<tag>"
var version = "dev"

// Get returns the version of the running binary.
func Get() string {
	return version
}
