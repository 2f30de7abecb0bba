package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/melovue/shell/internal/application/usecase"
	"github.com/melovue/shell/internal/cli/styles"
	"github.com/melovue/shell/internal/config"
	"github.com/melovue/shell/internal/domain/entity"
	"github.com/melovue/shell/internal/infrastructure/installer"
	"github.com/melovue/shell/internal/infrastructure/updatefeed"
)

var updateInstall bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Run the update gate check",
	Long: `Resolve the update gate against the backend: compare this build's
version tag with the required version.

Use --install to also download and hand the installer to the OS when
the build is stale (requires update.sideload in the config).`,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().BoolVarP(&updateInstall, "install", "i", false, "download and install when an update is required")
}

// updateModel is the bubbletea model for the update command. It walks
// the same gate state machine as the graphical shell.
type updateModel struct {
	spinner  spinner.Model
	renderer *styles.UpdateRenderer
	install  bool

	state entity.GateState
	done  bool

	// Result from the gate check.
	gate *usecase.ResolveGateOutput

	// Final result.
	result   string
	err      error
	quitting bool
}

// gateResultMsg is sent when the gate resolution completes.
type gateResultMsg struct {
	output *usecase.ResolveGateOutput
}

// downloadResultMsg is sent when the download-and-handoff completes.
type downloadResultMsg struct {
	output *usecase.DownloadInstallerOutput
}

func newUpdateModel(renderer *styles.UpdateRenderer, accentColor lipgloss.Color, install bool) updateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accentColor)

	return updateModel{
		spinner:  s,
		renderer: renderer,
		install:  install,
		state:    entity.GateChecking,
	}
}

func (m updateModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.resolveGate())
}

func (m updateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case gateResultMsg:
		m.gate = msg.output
		m.state = m.gate.State
		m.done = true

		app := GetApp()

		switch {
		case m.gate.State == entity.GateNotRequired && !app.BuildInfo.IsRelease():
			m.result = m.renderer.RenderDevBuild()

		case m.gate.State == entity.GateNotRequired && m.gate.RequiredVersion == "":
			m.result = m.renderer.RenderNotEnforced(m.gate.LocalVersion)

		case m.gate.State == entity.GateNotRequired:
			m.result = m.renderer.RenderCurrent(m.gate.LocalVersion)

		case m.gate.Diagnostic != "":
			m.err = fmt.Errorf("%s", m.gate.Diagnostic)

		case !m.install:
			m.result = m.renderer.RenderRequired(m.gate.LocalVersion, m.gate.RequiredVersion)

		case !app.Config.Update.Sideload:
			m.result = m.renderer.RenderCannotInstall(
				m.gate.LocalVersion, m.gate.RequiredVersion, m.gate.InstallerURL)

		default:
			m.state = entity.GateDownloading
			m.done = false
			return m, m.downloadInstaller()
		}
		return m, tea.Quit

	case downloadResultMsg:
		m.state = msg.output.State
		m.done = true
		if msg.output.State == entity.GateInstallHandoff {
			m.result = m.renderer.RenderHandoff(msg.output.ArtifactPath)
		} else {
			m.err = fmt.Errorf("%s", msg.output.Diagnostic)
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m updateModel) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		return m.renderer.RenderError(m.err)
	}

	if !m.done {
		switch m.state {
		case entity.GateChecking:
			return m.renderer.RenderChecking(m.spinner.View())
		case entity.GateDownloading:
			return m.renderer.RenderDownloading(m.spinner.View(), m.gate.RequiredVersion)
		}
	}
	return m.result
}

func (updateModel) resolveGate() tea.Cmd {
	return func() tea.Msg {
		app := GetApp()

		authority := updatefeed.NewClient(app.Config.Shell.BaseURL, app.ClientSecret)
		gateUC := usecase.NewResolveGateUseCase(authority, app.BuildInfo)

		return gateResultMsg{output: gateUC.Execute(app.Ctx(), usecase.ResolveGateInput{})}
	}
}

func (m updateModel) downloadInstaller() tea.Cmd {
	return func() tea.Msg {
		app := GetApp()

		stagingDir, err := config.GetStagingDir()
		if err != nil {
			return downloadResultMsg{output: &usecase.DownloadInstallerOutput{
				State:      entity.GateRequired,
				Diagnostic: fmt.Sprintf("resolve staging directory: %v", err),
			}}
		}

		downloadUC := usecase.NewDownloadInstallerUseCase(
			updatefeed.NewDownloader(),
			installer.NewHandoff(app.Config.Update.Sideload),
			stagingDir,
		)

		return downloadResultMsg{output: downloadUC.Execute(app.Ctx(), usecase.DownloadInstallerInput{
			InstallerURL: m.gate.InstallerURL,
		})}
	}
}

func runUpdate(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewUpdateRenderer(app.Theme)

	m := newUpdateModel(renderer, app.Theme.Accent, updateInstall)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	return nil
}
