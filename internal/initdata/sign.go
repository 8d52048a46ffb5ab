package initdata

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// keyDomain is the public HMAC key the platform uses to derive per-bot secrets.
const keyDomain = "WebAppData"

// DeriveKey returns HMAC-SHA256(key="WebAppData", msg=botToken).
func DeriveKey(botToken string) ([]byte, error) {
	if botToken == "" {
		return nil, ErrMissingBotToken
	}
	h := hmac.New(sha256.New, []byte(keyDomain))
	h.Write([]byte(botToken))
	return h.Sum(nil), nil
}

func mac(key []byte, msg string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(msg))
	return h.Sum(nil)
}

// Sign returns the lowercase hex HMAC-SHA256 of msg under key.
func Sign(key []byte, msg string) string {
	return hex.EncodeToString(mac(key, msg))
}

// CheckSignature recomputes the tag for msg and compares it with the
// hex-encoded hash supplied by the client.
func CheckSignature(key []byte, msg, hash string) error {
	got, err := hex.DecodeString(hash)
	if err != nil {
		return ErrHashMismatch
	}
	if !ConstantTimeEqual(mac(key, msg), got) {
		return ErrHashMismatch
	}
	return nil
}

// ConstantTimeEqual reports whether a and b are equal. Only the length
// check short-circuits; the byte comparison never exits early.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
