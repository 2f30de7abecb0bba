package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// GatePage is the blocking surface shown while the update gate is
// unresolved. It covers the whole window; the WebView is only mounted
// once the gate clears.
type GatePage struct {
	root     *gtk.Box
	spinner  *gtk.Spinner
	title    *gtk.Label
	detail   *gtk.Label
	progress *gtk.ProgressBar

	installBtn *gtk.Button
	cancelBtn  *gtk.Button

	onInstall func()
	onCancel  func()
}

// NewGatePage builds the gate page in its initial "checking" state.
func NewGatePage() *GatePage {
	p := &GatePage{}

	p.root = gtk.NewBox(gtk.OrientationVertical, 12)
	p.root.SetValign(gtk.AlignCenter)
	p.root.SetHalign(gtk.AlignCenter)
	p.root.SetMarginTop(24)
	p.root.SetMarginBottom(24)
	p.root.SetMarginStart(48)
	p.root.SetMarginEnd(48)

	p.spinner = gtk.NewSpinner()
	p.spinner.SetSizeRequest(32, 32)
	p.spinner.SetHalign(gtk.AlignCenter)

	p.title = gtk.NewLabel("")
	p.title.AddCSSClass("title-2")
	p.title.SetJustify(gtk.JustifyCenter)
	p.title.SetWrap(true)

	p.detail = gtk.NewLabel("")
	p.detail.AddCSSClass("dim-label")
	p.detail.SetJustify(gtk.JustifyCenter)
	p.detail.SetWrap(true)

	p.progress = gtk.NewProgressBar()
	p.progress.SetShowText(true)
	p.progress.SetVisible(false)

	p.installBtn = gtk.NewButtonWithLabel("Download and install")
	p.installBtn.AddCSSClass("suggested-action")
	p.installBtn.SetVisible(false)
	p.installBtn.ConnectClicked(func() {
		if p.onInstall != nil {
			p.onInstall()
		}
	})

	p.cancelBtn = gtk.NewButtonWithLabel("Quit")
	p.cancelBtn.SetVisible(false)
	p.cancelBtn.ConnectClicked(func() {
		if p.onCancel != nil {
			p.onCancel()
		}
	})

	p.root.Append(p.spinner)
	p.root.Append(p.title)
	p.root.Append(p.detail)
	p.root.Append(p.progress)
	p.root.Append(p.installBtn)
	p.root.Append(p.cancelBtn)

	p.ShowChecking()
	return p
}

// Widget returns the page's root widget.
func (p *GatePage) Widget() gtk.Widgetter {
	return p.root
}

// SetOnInstall registers the download-and-install button callback.
func (p *GatePage) SetOnInstall(fn func()) {
	p.onInstall = fn
}

// SetOnCancel registers the quit button callback.
func (p *GatePage) SetOnCancel(fn func()) {
	p.onCancel = fn
}

// ShowChecking displays the in-flight version check state.
func (p *GatePage) ShowChecking() {
	p.spinner.SetVisible(true)
	p.spinner.Start()
	p.title.SetText("Checking for updates")
	p.detail.SetText("")
	p.progress.SetVisible(false)
	p.installBtn.SetVisible(false)
	p.cancelBtn.SetVisible(false)
}

// ShowRequired displays the blocked state. canInstall controls whether
// the download action is offered; managed install channels hide it and
// only allow quitting.
func (p *GatePage) ShowRequired(requiredVersion, diagnostic string, canInstall bool) {
	p.spinner.Stop()
	p.spinner.SetVisible(false)
	p.title.SetText("Update required")

	switch {
	case diagnostic != "":
		p.detail.SetText(diagnostic)
	case requiredVersion != "":
		p.detail.SetText(fmt.Sprintf("Melovue needs version %s to continue.", requiredVersion))
	default:
		p.detail.SetText("A newer version of Melovue is required to continue.")
	}

	p.progress.SetVisible(false)
	p.installBtn.SetVisible(canInstall)
	p.installBtn.SetSensitive(true)
	p.cancelBtn.SetVisible(true)
}

// ShowDownloading switches to the download-in-progress state.
func (p *GatePage) ShowDownloading() {
	p.title.SetText("Downloading update")
	p.detail.SetText("")
	p.progress.SetFraction(0)
	p.progress.SetVisible(true)
	p.installBtn.SetSensitive(false)
	p.cancelBtn.SetVisible(false)
}

// SetProgress updates the download progress bar. fraction is in [0,1].
func (p *GatePage) SetProgress(fraction float64) {
	p.progress.SetFraction(fraction)
}

// ShowHandoff displays the terminal state after the installer was
// handed to the OS.
func (p *GatePage) ShowHandoff() {
	p.title.SetText("Installer started")
	p.detail.SetText("Finish the installation, then start Melovue again.")
	p.progress.SetFraction(1)
	p.installBtn.SetVisible(false)
	p.cancelBtn.SetVisible(true)
}
