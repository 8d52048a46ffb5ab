package initdata

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// MaxAge is the default lifetime of a launch payload.
const MaxAge = 24 * time.Hour

// millisThreshold separates millisecond timestamps from second ones.
const millisThreshold = 1e12

// int64 range as float64; both bounds are exact powers of two.
const (
	maxMillis = float64(1 << 63)
	minMillis = -float64(1 << 63)
)

// ParseAuthDate converts an auth_date value to Unix milliseconds.
// Values above 1e12 are already milliseconds, anything else is seconds.
// Results outside the int64 range saturate at its bounds.
func ParseAuthDate(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissingAuthDate
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return 0, ErrMissingAuthDate
	}
	if v <= millisThreshold {
		v *= 1000
	}
	switch {
	case v >= maxMillis:
		return math.MaxInt64, nil
	case v < minMillis:
		return math.MinInt64, nil
	}
	return int64(v), nil
}

// CheckFreshness rejects timestamps older than maxAge relative to now.
// Future timestamps are accepted.
func CheckFreshness(authDateMillis int64, now time.Time, maxAge time.Duration) error {
	// Compare against the cutoff instead of subtracting authDateMillis,
	// which would overflow for timestamps near the int64 bounds.
	if authDateMillis < now.UnixMilli()-maxAge.Milliseconds() {
		return ErrExpiredAuthDate
	}
	return nil
}
