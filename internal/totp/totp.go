// Package totp generates and checks RFC 6238 codes: SHA-1, six digits,
// 30 second steps.
package totp

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/tatran0195/akaw/internal/apperr"
)

const Period = 30

var opts = totp.ValidateOpts{
	Period:    Period,
	Skew:      0,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithClock is NewEngine with an injected clock.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

func (e *Engine) Generate(secret string) (string, error) {
	return e.GenerateAt(secret, e.now())
}

func (e *Engine) GenerateAt(secret string, t time.Time) (string, error) {
	code, err := totp.GenerateCodeCustom(normalize(secret), t, opts)
	if err != nil {
		if errors.Is(err, otp.ErrValidateSecretInvalidBase32) {
			return "", apperr.Mark(err, apperr.ErrInvalidSecret, "secret is not valid base32")
		}
		return "", apperr.Mark(err, apperr.ErrTotp, "generate code")
	}
	return code, nil
}

// Validate reports whether code matches the current step exactly.
func (e *Engine) Validate(code, secret string) (bool, error) {
	valid, err := totp.ValidateCustom(code, normalize(secret), e.now(), opts)
	if err != nil {
		if errors.Is(err, otp.ErrValidateSecretInvalidBase32) {
			return false, apperr.Mark(err, apperr.ErrInvalidSecret, "secret is not valid base32")
		}
		if errors.Is(err, otp.ErrValidateInputInvalidLength) {
			return false, nil
		}
		return false, apperr.Mark(err, apperr.ErrTotp, "validate code")
	}
	return valid, nil
}

// TimeRemaining returns the seconds until the next step begins, or 0 exactly
// on a step boundary.
func (e *Engine) TimeRemaining(secret string) uint64 {
	return remainingAt(e.now())
}

func remainingAt(t time.Time) uint64 {
	elapsed := uint64(t.Unix()) % Period
	if elapsed == 0 {
		return 0
	}
	return Period - elapsed
}

// Secrets pasted from consoles often carry spaces or lower case letters.
func normalize(secret string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(secret), " ", ""))
}
