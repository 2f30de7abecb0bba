package port

import "context"

// URLLauncher hands URLs to the operating system's default handler.
type URLLauncher interface {
	// CanOpen reports whether the OS has a handler registered for the
	// URL's scheme.
	CanOpen(ctx context.Context, url string) bool

	// Open asks the OS to open the URL with its default handler.
	Open(ctx context.Context, url string) error
}
