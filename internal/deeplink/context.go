package deeplink

import "strings"

// Mode is the screen a deep link opens.
type Mode string

const (
	ModeDaily    Mode = "daily"
	ModeRetro    Mode = "retro"
	ModeIncident Mode = "incident"
	ModeUnknown  Mode = "unknown"
)

// Context is the classified form of a start parameter. Details is nil for
// daily and unknown links and for an incident link with nothing after the
// prefix; a retro link always carries it, possibly empty.
type Context struct {
	Raw     string  `json:"raw"`
	Mode    Mode    `json:"mode"`
	Label   string  `json:"label"`
	Details *string `json:"details,omitempty"`
}

type rule struct {
	prefix string
	build  func(raw, rest string) Context
}

// rules are checked in order; the first matching prefix wins.
var rules = []rule{
	{"daily_", func(raw, _ string) Context {
		return Context{Raw: raw, Mode: ModeDaily, Label: "Daily check-in"}
	}},
	{"retro_", func(raw, rest string) Context {
		d := spaced(rest)
		return Context{Raw: raw, Mode: ModeRetro, Label: "Retro", Details: &d}
	}},
	{"incident_", func(raw, rest string) Context {
		c := Context{Raw: raw, Mode: ModeIncident, Label: "Incident"}
		if rest != "" {
			d := spaced(rest)
			c.Details = &d
		}
		return c
	}},
}

func spaced(s string) string { return strings.ReplaceAll(s, "_", " ") }

func unknown(raw string) Context {
	return Context{Raw: raw, Mode: ModeUnknown, Label: "Unknown mode"}
}

// Parse classifies a start parameter. It never fails: anything it does not
// recognise is ModeUnknown.
func Parse(raw string) Context {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return unknown("")
	}
	for _, r := range rules {
		if rest, ok := strings.CutPrefix(raw, r.prefix); ok {
			return r.build(raw, rest)
		}
	}
	return unknown(raw)
}
