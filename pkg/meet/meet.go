// Package meet guards the video-conferencing links attached to appointments.
// The platform does not create real per-appointment meetings; every booking
// is assigned a static Google Meet URL, and links are checked against an
// allow-list before being handed to clients so a tampered row can never
// point users at an arbitrary site.
package meet

import "net/url"

// AllowedHost is the only host a meeting link may point at.
const AllowedHost = "meet.google.com"

// DefaultLink is the placeholder used when no base is configured.
const DefaultLink = "https://meet.google.com/new"

// IsValidLink reports whether rawURL is a secure link to the allow-listed
// meeting host. Unparseable URLs are invalid.
func IsValidLink(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Hostname() == AllowedHost
}
