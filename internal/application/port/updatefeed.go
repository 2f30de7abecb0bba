// Package port defines interfaces for external dependencies.
package port

import (
	"context"
	"errors"

	"github.com/melovue/shell/internal/domain/entity"
)

// ErrUpdateCheckFailed wraps any failure to obtain a usable answer from
// the version authority: transport errors, non-2xx statuses and
// malformed bodies. With a release build the gate treats it as
// update-required (fail-closed).
var ErrUpdateCheckFailed = errors.New("update check failed")

// VersionAuthority answers the startup version check against the
// Melovue backend.
type VersionAuthority interface {
	// FetchUpdateInfo performs a single request to the version endpoint.
	// Version tags in the result are normalized. Any failure is wrapped
	// in ErrUpdateCheckFailed.
	FetchUpdateInfo(ctx context.Context) (*entity.UpdateInfo, error)
}

// InstallerDownloader streams an installer package to local storage.
type InstallerDownloader interface {
	// Download fetches url into destPath, overwriting any previous
	// artifact. progress, if non-nil, receives fractions in [0,1] as the
	// transfer advances.
	Download(ctx context.Context, url, destPath string, progress func(float64)) error
}

// PackageInstaller hands a downloaded installer artifact to the OS
// package-install flow. The shell does not wait for install
// completion, only for the handoff itself.
type PackageInstaller interface {
	// Supported reports whether this install channel allows side-loaded
	// installer packages at all.
	Supported() bool

	// Install launches the OS installer UI for the artifact at path.
	Install(ctx context.Context, path string) error
}
