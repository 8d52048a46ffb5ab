package initdata

import "time"

// Verify checks a raw launch payload against botToken at time now.
// Checks run in a fixed order and the first failure is returned:
// empty payload, empty token, missing hash, bad signature, bad or stale auth_date.
func Verify(raw, botToken string, now time.Time) (Data, error) {
	if raw == "" {
		return Data{}, ErrMissingInitData
	}
	key, err := DeriveKey(botToken)
	if err != nil {
		return Data{}, err
	}
	return verifyWithKey(raw, key, now, MaxAge)
}

func verifyWithKey(raw string, key []byte, now time.Time, maxAge time.Duration) (Data, error) {
	msg, hash, fields, err := Canonicalize(raw)
	if err != nil {
		return Data{}, err
	}
	if err := CheckSignature(key, msg, hash); err != nil {
		return Data{}, err
	}
	authDate, err := ParseAuthDate(fields["auth_date"])
	if err != nil {
		return Data{}, err
	}
	if err := CheckFreshness(authDate, now, maxAge); err != nil {
		return Data{}, err
	}
	return ExtractFields(fields, authDate), nil
}

// Verifier holds the derived key for one bot token. It is immutable after
// construction and safe for concurrent use.
type Verifier struct {
	key    []byte
	keyErr error
	maxAge time.Duration
	now    func() time.Time
}

type Option func(*Verifier)

// WithMaxAge overrides the 24h payload lifetime.
func WithMaxAge(d time.Duration) Option {
	return func(v *Verifier) {
		if d > 0 {
			v.maxAge = d
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(v *Verifier) {
		if now != nil {
			v.now = now
		}
	}
}

// NewVerifier derives the signing key once. An empty token is not an error
// here; every Verify call then reports ErrMissingBotToken, which keeps the
// rejection order intact.
func NewVerifier(botToken string, opts ...Option) *Verifier {
	v := &Verifier{maxAge: MaxAge, now: time.Now}
	v.key, v.keyErr = DeriveKey(botToken)
	for _, o := range opts {
		o(v)
	}
	return v
}

func (v *Verifier) Verify(raw string) (Data, error) {
	return v.VerifyAt(raw, v.now())
}

func (v *Verifier) VerifyAt(raw string, now time.Time) (Data, error) {
	if raw == "" {
		return Data{}, ErrMissingInitData
	}
	if v.keyErr != nil {
		return Data{}, v.keyErr
	}
	return verifyWithKey(raw, v.key, now, v.maxAge)
}
