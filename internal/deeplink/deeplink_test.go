package deeplink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Context
	}{
		{"daily_today", Context{Raw: "daily_today", Mode: ModeDaily, Label: "Daily check-in"}},
		{"retro_sprint12", Context{Raw: "retro_sprint12", Mode: ModeRetro, Label: "Retro", Details: str("sprint12")}},
		{"incident_INC-481", Context{Raw: "incident_INC-481", Mode: ModeIncident, Label: "Incident", Details: str("INC-481")}},
		{"", Context{Raw: "", Mode: ModeUnknown, Label: "Unknown mode"}},
		{"   ", Context{Raw: "", Mode: ModeUnknown, Label: "Unknown mode"}},
		{"  retro_q3_planning_board ", Context{Raw: "retro_q3_planning_board", Mode: ModeRetro, Label: "Retro", Details: str("q3 planning board")}},
		{"incident_", Context{Raw: "incident_", Mode: ModeIncident, Label: "Incident"}},
		{"retro_", Context{Raw: "retro_", Mode: ModeRetro, Label: "Retro", Details: str("")}},
		{"incident___", Context{Raw: "incident___", Mode: ModeIncident, Label: "Incident", Details: str("  ")}},
		{"daily_with_details", Context{Raw: "daily_with_details", Mode: ModeDaily, Label: "Daily check-in"}},
		{"daily", Context{Raw: "daily", Mode: ModeUnknown, Label: "Unknown mode"}},
		{"weekly_sync", Context{Raw: "weekly_sync", Mode: ModeUnknown, Label: "Unknown mode"}},
		{"Daily_today", Context{Raw: "Daily_today", Mode: ModeUnknown, Label: "Unknown mode"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestParseDetailsJSON(t *testing.T) {
	retro, err := json.Marshal(Parse("retro_"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"raw":"retro_","mode":"retro","label":"Retro","details":""}`, string(retro))

	incident, err := json.Marshal(Parse("incident_"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"raw":"incident_","mode":"incident","label":"Incident"}`, string(incident))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "abcd", Sanitize("a b/c!d"))
	assert.Equal(t, "daily", Sanitize(""))
	assert.Equal(t, "daily", Sanitize("!!! ///"))
	assert.Equal(t, "incident_INC-481", Sanitize("incident_INC-481"))
	assert.Equal(t, "rtro", Sanitize("rétro"))

	long := strings.Repeat("ab_-", 150)
	got := Sanitize(long)
	assert.Len(t, got, MaxPayloadLen)
	assert.Equal(t, long[:MaxPayloadLen], got)

	// invalid characters do not count towards the limit
	padded := strings.Repeat("!", 100) + strings.Repeat("x", 600)
	assert.Equal(t, strings.Repeat("x", MaxPayloadLen), Sanitize(padded))
}

func TestStartAppLink(t *testing.T) {
	assert.Equal(t, "https://max.ru/MyPulseBot?startapp", StartAppLink("max.ru", "MyPulseBot", ""))
	assert.Equal(t, "https://max.ru/MyPulseBot?startapp=retro_sprint12", StartAppLink("max.ru", "MyPulseBot", "retro_sprint12"))
	assert.Equal(t, "https://t.me/PulseBot?startapp=daily", StartAppLink("t.me", "PulseBot", "%%%"))
}
