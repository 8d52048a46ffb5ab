package initdata

import "errors"

// Rejection reasons. The error text is what the HTTP layer reports.
var (
	ErrMissingInitData = errors.New("initData missing")
	ErrMissingBotToken = errors.New("bot token missing")
	ErrMissingHash     = errors.New("hash missing")
	ErrHashMismatch    = errors.New("hash mismatch")
	ErrMissingAuthDate = errors.New("auth_date missing")
	ErrExpiredAuthDate = errors.New("auth_date expired")
)

var rejections = []error{
	ErrMissingInitData,
	ErrMissingBotToken,
	ErrMissingHash,
	ErrHashMismatch,
	ErrMissingAuthDate,
	ErrExpiredAuthDate,
}

// ReasonUnknown is reported for errors outside the rejection set.
const ReasonUnknown = "validation failed"

// Reason maps err to the reason string sent to clients.
func Reason(err error) string {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return r.Error()
		}
	}
	return ReasonUnknown
}
