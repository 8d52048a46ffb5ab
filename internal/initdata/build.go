package initdata

import (
	"net/url"
	"strconv"
	"time"
)

// Build signs fields with botToken and returns a payload Verify accepts.
// A missing auth_date is filled from now. Used by the dev CLI and tests.
func Build(fields map[string]string, botToken string, now time.Time) (string, error) {
	key, err := DeriveKey(botToken)
	if err != nil {
		return "", err
	}
	f := Fields{}
	for k, v := range fields {
		if k != "hash" {
			f[k] = v
		}
	}
	if _, ok := f["auth_date"]; !ok {
		f["auth_date"] = strconv.FormatInt(now.Unix(), 10)
	}
	q := url.Values{}
	for k, v := range f {
		q.Set(k, v)
	}
	q.Set("hash", Sign(key, f.DataCheckString()))
	// ParseFields decodes the whole string before splitting, so escape twice.
	return url.PathEscape(q.Encode()), nil
}
