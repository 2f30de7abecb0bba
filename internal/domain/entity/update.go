// Package entity defines domain entities for melovue-shell.
package entity

// UpdateInfo holds the version authority's answer for one startup
// check. It is fetched fresh on every launch and never persisted.
type UpdateInfo struct {
	// RequiredVersion is the version tag the backend requires, already
	// normalized to the canonical "v<value>" form. Empty when the
	// backend does not enforce a version.
	RequiredVersion string
	// InstallerURL is the download location for the current installer
	// package. Empty when the backend provides none.
	InstallerURL string
}

// GateState is the update gate's state machine. The embedded WebView is
// mounted if and only if the gate is in GateNotRequired.
type GateState int

const (
	// GateChecking means the startup version check is in flight.
	GateChecking GateState = iota
	// GateNotRequired means the build is current (or unverifiable) and
	// the shell may render.
	GateNotRequired
	// GateRequired means the build is stale or the check failed; the
	// shell stays blocked until the user remediates.
	GateRequired
	// GateDownloading means the installer download is in progress.
	GateDownloading
	// GateInstallHandoff means the downloaded installer was handed to
	// the OS package installer. Terminal for this flow.
	GateInstallHandoff
)

// String returns a human-readable name for the gate state.
func (s GateState) String() string {
	switch s {
	case GateChecking:
		return "checking"
	case GateNotRequired:
		return "not-required"
	case GateRequired:
		return "required"
	case GateDownloading:
		return "downloading"
	case GateInstallHandoff:
		return "install-handoff"
	default:
		return "unknown"
	}
}
