package navigation

import (
	"net/url"
	"strings"
)

// Reason explains a policy decision. Reasons are stable strings used in
// structured logs.
type Reason string

const (
	// ReasonEmptyURL means the request carried no URL to classify.
	ReasonEmptyURL Reason = "empty_url"
	// ReasonMalformedURL means the URL did not parse.
	ReasonMalformedURL Reason = "malformed_url"
	// ReasonAppScheme means the URL uses a deep-link scheme handled by a
	// dedicated native application (spotify:, intent:).
	ReasonAppScheme Reason = "app_scheme"
	// ReasonContactScheme means the URL is a mailto:, tel: or sms: link.
	ReasonContactScheme Reason = "contact_scheme"
	// ReasonPartnerTopLevel means a top-level navigation targeted the
	// partner host outside its embeddable prefix.
	ReasonPartnerTopLevel Reason = "partner_top_level"
	// ReasonExternalHost means a top-level navigation targeted a host
	// outside the base host and allow-list.
	ReasonExternalHost Reason = "external_host"
	// ReasonInPlace means the navigation stays in the embedded surface.
	ReasonInPlace Reason = "in_place"
	// ReasonUnknownScheme means an unrecognized scheme is left to the
	// WebView's default handling.
	ReasonUnknownScheme Reason = "unknown_scheme"
)

// Decision is the policy engine's verdict for one navigation request.
// When AllowInPlace is false the caller hands the URL to the external
// dispatcher; the decision itself is final either way.
type Decision struct {
	AllowInPlace bool
	Reason       Reason
}

// Schemes that always leave the shell.
const (
	schemeSpotify = "spotify"
	schemeIntent  = "intent"
	schemeMailto  = "mailto"
	schemeTel     = "tel"
	schemeSMS     = "sms"
)

// Policy holds the immutable host configuration the engine decides
// against. Built once at shell startup from the loaded config.
type Policy struct {
	// BaseHost is the host of the shell's home address.
	BaseHost string
	// TrustedHosts are additional hosts allowed to load top-level.
	TrustedHosts []string
	// PartnerHost is the music-service host that must open natively when
	// visited top-level (e.g. "open.spotify.com").
	PartnerHost string
	// PartnerEmbedPrefix is the path prefix under PartnerHost that stays
	// embeddable for widget playback (e.g. "/embed/").
	PartnerEmbedPrefix string
}

// Engine evaluates navigation requests against a fixed Policy. The
// zero value is unusable; construct with NewEngine.
type Engine struct {
	policy Policy
}

// NewEngine creates a policy engine for the given host policy.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Decide classifies a navigation request. It is synchronous, pure and
// total: any string input yields a verdict, and the caller must not be
// blocked on asynchronous work before the WebView proceeds or cancels.
//
// First match wins:
//  1. empty URL: allow (nothing to classify or dispatch);
//  2. app deep-link schemes: veto;
//  3. mailto/tel/sms: veto;
//  4. http/https: top-level partner pages outside the embed prefix and
//     top-level external hosts are vetoed, everything else (including
//     all sub-frame loads) is allowed;
//  5. any other scheme: allow, the WebView's default handling applies.
func (e *Engine) Decide(req Request) Decision {
	if req.URL == "" {
		return Decision{AllowInPlace: true, Reason: ReasonEmptyURL}
	}

	parsed, err := url.Parse(req.URL)
	if err != nil {
		return Decision{AllowInPlace: true, Reason: ReasonMalformedURL}
	}

	switch parsed.Scheme {
	case schemeSpotify, schemeIntent:
		return Decision{AllowInPlace: false, Reason: ReasonAppScheme}
	case schemeMailto, schemeTel, schemeSMS:
		return Decision{AllowInPlace: false, Reason: ReasonContactScheme}
	case "http", "https":
		// The partner host rule is terminal: it decides embeddability on
		// its own and is never consulted against the allow-list.
		if req.TopLevelFrame && e.policy.PartnerHost != "" && parsed.Host == e.policy.PartnerHost {
			if e.embeddablePartnerPath(parsed.Path) {
				return Decision{AllowInPlace: true, Reason: ReasonInPlace}
			}
			return Decision{AllowInPlace: false, Reason: ReasonPartnerTopLevel}
		}
		if req.TopLevelFrame && IsExternal(req.URL, e.policy.BaseHost, e.policy.TrustedHosts) {
			return Decision{AllowInPlace: false, Reason: ReasonExternalHost}
		}
		return Decision{AllowInPlace: true, Reason: ReasonInPlace}
	default:
		return Decision{AllowInPlace: true, Reason: ReasonUnknownScheme}
	}
}

// embeddablePartnerPath reports whether a path on the partner host
// stays embeddable for widget playback. With no embed prefix configured
// the whole partner host opens natively.
func (e *Engine) embeddablePartnerPath(path string) bool {
	if e.policy.PartnerEmbedPrefix == "" {
		return false
	}
	return strings.HasPrefix(path, e.policy.PartnerEmbedPrefix)
}

// NeedsDispatch reports whether a URL that finished loading should still
// be handed to the OS. It backs the completed-navigation safety net for
// contact links triggered by script rather than user gesture: only
// mailto/tel/sms qualify, regardless of frame level.
func NeedsDispatch(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	switch parsed.Scheme {
	case schemeMailto, schemeTel, schemeSMS:
		return true
	}
	return false
}
