package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/melovue/shell/internal/application/port"
	"github.com/melovue/shell/internal/domain/entity"
	"github.com/melovue/shell/internal/logging"
)

const (
	// File permission for the staging directory.
	stagingDirPerm = 0o755

	// Fixed artifact name inside the staging directory. Overwritten on
	// every attempt; no partial downloads are resumed.
	installerFileName = "melovue-shell-installer.pkg"
)

// DownloadInstallerInput holds the input for the installer download.
type DownloadInstallerInput struct {
	// InstallerURL is the package location from the version authority.
	InstallerURL string
	// OnProgress, if non-nil, receives download fractions in [0,1].
	OnProgress func(float64)
}

// DownloadInstallerOutput holds the result of the download-and-handoff
// flow.
type DownloadInstallerOutput struct {
	// State is GateInstallHandoff on success, GateRequired on failure.
	State entity.GateState
	// ArtifactPath is the staged installer location on success.
	ArtifactPath string
	// Diagnostic is a short failure description when State is
	// GateRequired.
	Diagnostic string
}

// DownloadInstallerUseCase streams the installer package to the staging
// directory and hands the artifact to the OS package installer. There
// is no automatic retry; a failure returns the gate to GateRequired and
// the user may start over.
type DownloadInstallerUseCase struct {
	downloader port.InstallerDownloader
	installer  port.PackageInstaller
	stagingDir string
}

// NewDownloadInstallerUseCase creates a new installer download use case.
func NewDownloadInstallerUseCase(
	downloader port.InstallerDownloader,
	installer port.PackageInstaller,
	stagingDir string,
) *DownloadInstallerUseCase {
	return &DownloadInstallerUseCase{
		downloader: downloader,
		installer:  installer,
		stagingDir: stagingDir,
	}
}

// Execute downloads the installer and launches the OS install flow.
func (uc *DownloadInstallerUseCase) Execute(ctx context.Context, input DownloadInstallerInput) *DownloadInstallerOutput {
	log := logging.FromContext(ctx)

	if !uc.installer.Supported() {
		// The capability check lives at this boundary so the gate logic
		// stays platform-agnostic.
		return &DownloadInstallerOutput{
			State:      entity.GateRequired,
			Diagnostic: "side-loaded installs are not supported on this install channel",
		}
	}

	if input.InstallerURL == "" {
		return &DownloadInstallerOutput{
			State:      entity.GateRequired,
			Diagnostic: "backend provided no installer URL",
		}
	}

	if err := os.MkdirAll(uc.stagingDir, stagingDirPerm); err != nil {
		return &DownloadInstallerOutput{
			State:      entity.GateRequired,
			Diagnostic: fmt.Sprintf("create staging directory: %v", err),
		}
	}

	artifactPath := filepath.Join(uc.stagingDir, installerFileName)

	log.Info().Str("url", input.InstallerURL).Str("path", artifactPath).Msg("downloading installer")

	if err := uc.downloader.Download(ctx, input.InstallerURL, artifactPath, input.OnProgress); err != nil {
		_ = os.Remove(artifactPath)
		log.Warn().Err(err).Msg("installer download failed")
		return &DownloadInstallerOutput{
			State:      entity.GateRequired,
			Diagnostic: fmt.Sprintf("download failed: %v", err),
		}
	}

	log.Info().Str("path", artifactPath).Msg("handing installer to OS")

	if err := uc.installer.Install(ctx, artifactPath); err != nil {
		log.Warn().Err(err).Msg("installer handoff failed")
		return &DownloadInstallerOutput{
			State:      entity.GateRequired,
			Diagnostic: fmt.Sprintf("install handoff failed: %v", err),
		}
	}

	return &DownloadInstallerOutput{
		State:        entity.GateInstallHandoff,
		ArtifactPath: artifactPath,
	}
}
