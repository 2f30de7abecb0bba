package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// ErrorPage replaces the web surface when the hosted app fails to load,
// either through a transport error or an HTTP error status on the main
// document.
type ErrorPage struct {
	root   *gtk.Box
	title  *gtk.Label
	detail *gtk.Label

	retryBtn *gtk.Button
	onRetry  func()
}

// NewErrorPage builds the load failure page.
func NewErrorPage() *ErrorPage {
	p := &ErrorPage{}

	p.root = gtk.NewBox(gtk.OrientationVertical, 12)
	p.root.SetValign(gtk.AlignCenter)
	p.root.SetHalign(gtk.AlignCenter)
	p.root.SetMarginStart(48)
	p.root.SetMarginEnd(48)

	p.title = gtk.NewLabel("Melovue is unreachable")
	p.title.AddCSSClass("title-2")
	p.title.SetJustify(gtk.JustifyCenter)
	p.title.SetWrap(true)

	p.detail = gtk.NewLabel("")
	p.detail.AddCSSClass("dim-label")
	p.detail.SetJustify(gtk.JustifyCenter)
	p.detail.SetWrap(true)

	p.retryBtn = gtk.NewButtonWithLabel("Try again")
	p.retryBtn.AddCSSClass("suggested-action")
	p.retryBtn.SetHalign(gtk.AlignCenter)
	p.retryBtn.ConnectClicked(func() {
		if p.onRetry != nil {
			p.onRetry()
		}
	})

	p.root.Append(p.title)
	p.root.Append(p.detail)
	p.root.Append(p.retryBtn)

	return p
}

// Widget returns the page's root widget.
func (p *ErrorPage) Widget() gtk.Widgetter {
	return p.root
}

// SetOnRetry registers the retry button callback.
func (p *ErrorPage) SetOnRetry(fn func()) {
	p.onRetry = fn
}

// ShowLoadFailure displays a transport-level load failure.
func (p *ErrorPage) ShowLoadFailure(detail string) {
	if detail == "" {
		detail = "Check your connection and try again."
	}
	p.detail.SetText(detail)
}

// ShowHTTPFailure displays an HTTP error status on the main document.
func (p *ErrorPage) ShowHTTPFailure(status int) {
	p.detail.SetText(fmt.Sprintf("The server answered with status %d.", status))
}
