package navigation

import "net/url"

// IsExternal reports whether rawURL points outside the shell's trusted
// hosts. The match is an exact, case-sensitive comparison of the URL's
// host against baseHost and the allow-list; there is no subdomain
// wildcarding.
//
// Unclassifiable input returns false: a URL that cannot be parsed, or
// that carries no host at all, cannot be dispatched to an external
// handler either, so it stays in place.
func IsExternal(rawURL, baseHost string, allowList []string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := parsed.Host
	if host == "" {
		return false
	}
	if host == baseHost {
		return false
	}
	for _, trusted := range allowList {
		if host == trusted {
			return false
		}
	}
	return true
}
