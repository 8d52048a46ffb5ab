package initdata

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is a structured sub-field (user or chat) as sent by the platform.
type Record map[string]any

// Data is what a verified payload exposes to the application.
type Data struct {
	User       Record  `json:"user,omitempty"`
	Chat       Record  `json:"chat,omitempty"`
	StartParam *string `json:"start_param,omitempty"`
	QueryID    *string `json:"query_id,omitempty"`
	AuthDate   int64   `json:"auth_date"`
}

// StartParamValue returns start_param, or "" when the payload has none.
func (d Data) StartParamValue() string {
	if d.StartParam == nil {
		return ""
	}
	return *d.StartParam
}

// ExtractFields copies the application fields out of a signed field set.
// A user or chat value that is not a JSON object is dropped; it never
// invalidates the payload, the signature already covers it. start_param and
// query_id are nil only when the key is absent; an empty value is kept.
func ExtractFields(f Fields, authDateMillis int64) Data {
	return Data{
		User:       decodeRecord(f, "user"),
		Chat:       decodeRecord(f, "chat"),
		StartParam: optional(f, "start_param"),
		QueryID:    optional(f, "query_id"),
		AuthDate:   authDateMillis,
	}
}

func decodeRecord(f Fields, key string) Record {
	raw, ok := f[key]
	if !ok || raw == "" {
		return nil
	}
	var rec Record
	if err := json.UnmarshalFromString(raw, &rec); err != nil || rec == nil {
		return nil
	}
	return rec
}

func optional(f Fields, key string) *string {
	v, ok := f[key]
	if !ok {
		return nil
	}
	return &v
}
