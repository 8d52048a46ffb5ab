package deeplink

import (
	"net/url"
	"strings"
)

const (
	MaxPayloadLen   = 512
	FallbackPayload = "daily"
)

// Sanitize keeps only [A-Za-z0-9_-], cuts the result to MaxPayloadLen and
// falls back to "daily" when nothing is left.
func Sanitize(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw) && b.Len() < MaxPayloadLen; i++ {
		if c := raw[i]; allowed(c) {
			b.WriteByte(c)
		}
	}
	if b.Len() == 0 {
		return FallbackPayload
	}
	return b.String()
}

func allowed(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return c == '_' || c == '-'
}

// StartAppLink builds https://<host>/<bot>?startapp=<payload>. An empty
// payload yields the bare ?startapp link that opens the app's main screen.
func StartAppLink(host, bot, payload string) string {
	u := url.URL{Scheme: "https", Host: host, Path: "/" + bot}
	if payload == "" {
		return u.String() + "?startapp"
	}
	return u.String() + "?startapp=" + Sanitize(payload)
}
