// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags. Version is
// the shell's release tag; it is empty (or "dev") in development
// builds, which disables update enforcement.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// IsRelease reports whether this binary carries a release version tag
// that the update gate can enforce against.
func (i Info) IsRelease() bool {
	return i.Version != "" && i.Version != "dev"
}
