package initdata

import (
	"net/url"
	"sort"
	"strings"
)

// Fields is the decoded key/value view of a launch payload.
type Fields map[string]string

// ParseFields decodes raw the way the platform does before signing:
// one pass over the whole string, then split on '&' and decode each side.
// Duplicate keys keep the last value.
func ParseFields(raw string) Fields {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	fields := Fields{}
	for _, pair := range strings.Split(decoded, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		fields[unescape(k)] = unescape(v)
	}
	return fields
}

func unescape(s string) string {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return out
}

// DataCheckString joins every field except hash as sorted "key=value" lines.
func (f Fields) DataCheckString() string {
	lines := make([]string, 0, len(f))
	for k, v := range f {
		if k == "hash" {
			continue
		}
		lines = append(lines, k+"="+v)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// Canonicalize returns the signed message and the hash the payload claims.
func Canonicalize(raw string) (msg, hash string, fields Fields, err error) {
	fields = ParseFields(raw)
	hash = fields["hash"]
	if hash == "" {
		return "", "", fields, ErrMissingHash
	}
	delete(fields, "hash")
	return fields.DataCheckString(), hash, fields, nil
}
