package cmd

// version is set at build time using:
// -ldflags "-X github.com/jvr-guru/actuatord/internal/cmd.version=<version>"
var version = "dev"

// Version returns the version of actuatord.
func Version() string {
	return version
}
