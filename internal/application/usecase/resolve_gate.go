// Package usecase implements application use cases for melovue-shell.
package usecase

import (
	"context"
	"fmt"

	"github.com/melovue/shell/internal/application/port"
	"github.com/melovue/shell/internal/domain/build"
	"github.com/melovue/shell/internal/domain/entity"
	"github.com/melovue/shell/internal/domain/version"
	"github.com/melovue/shell/internal/logging"
)

// ResolveGateInput holds the input for the gate resolution use case.
type ResolveGateInput struct{}

// ResolveGateOutput holds the resolved gate state for this startup.
type ResolveGateOutput struct {
	// State is GateNotRequired or GateRequired.
	State entity.GateState
	// LocalVersion is the normalized tag of the running build, empty for
	// dev builds.
	LocalVersion string
	// RequiredVersion is the normalized tag the backend requires. Set
	// when State is GateRequired because of a version mismatch.
	RequiredVersion string
	// InstallerURL is the download location offered by the backend, when
	// present.
	InstallerURL string
	// Diagnostic is a short human-readable failure description when the
	// check itself failed.
	Diagnostic string
}

// ResolveGateUseCase runs the startup update gate: it compares the
// build's version tag against the backend's required tag and decides
// whether the shell may render.
//
// A build without a version tag cannot be enforced against, so it
// resolves to GateNotRequired without any network call. A build with a
// tag fails closed: every check failure resolves to GateRequired.
type ResolveGateUseCase struct {
	authority port.VersionAuthority
	buildInfo build.Info
}

// NewResolveGateUseCase creates a new gate resolution use case.
func NewResolveGateUseCase(authority port.VersionAuthority, buildInfo build.Info) *ResolveGateUseCase {
	return &ResolveGateUseCase{
		authority: authority,
		buildInfo: buildInfo,
	}
}

// Execute resolves the gate. Calling it twice with identical backend
// responses yields the same state both times.
func (uc *ResolveGateUseCase) Execute(ctx context.Context, _ ResolveGateInput) *ResolveGateOutput {
	log := logging.FromContext(ctx)

	if !uc.buildInfo.IsRelease() {
		log.Debug().Str("version", uc.buildInfo.Version).Msg("dev build, update gate not enforced")
		return &ResolveGateOutput{State: entity.GateNotRequired}
	}

	local := version.Normalize(uc.buildInfo.Version)

	info, err := uc.authority.FetchUpdateInfo(ctx)
	if err != nil {
		// Fail closed: an unverifiable release build stays blocked.
		log.Warn().Err(err).Msg("version check failed, blocking shell")
		return &ResolveGateOutput{
			State:        entity.GateRequired,
			LocalVersion: local,
			Diagnostic:   fmt.Sprintf("version check failed: %v", err),
		}
	}

	if info.RequiredVersion == "" {
		log.Debug().Str("local", local).Msg("backend enforces no version")
		return &ResolveGateOutput{State: entity.GateNotRequired, LocalVersion: local}
	}

	required := version.Normalize(info.RequiredVersion)
	if version.Equal(local, required) {
		log.Debug().Str("local", local).Msg("build is current")
		return &ResolveGateOutput{State: entity.GateNotRequired, LocalVersion: local}
	}

	log.Info().
		Str("local", local).
		Str("required", required).
		Msg("build is stale, update required")

	return &ResolveGateOutput{
		State:           entity.GateRequired,
		LocalVersion:    local,
		RequiredVersion: required,
		InstallerURL:    info.InstallerURL,
	}
}
