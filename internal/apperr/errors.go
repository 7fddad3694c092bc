// Package apperr holds the error kinds surfaced by akaw. Callers match them
// with errors.Is / errors.As; wrapped causes keep their message.
package apperr

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Setup
var (
	ErrConfigMissing = errors.New("AWS config not found, run 'aws configure' first")
	ErrNoProfiles    = errors.New("no AWS profiles found, run 'aws configure' first")
	ErrAWSCLIMissing = errors.New("AWS CLI not found")
)

// Identity boundary
var (
	ErrIdentityUnavailable = errors.New("caller identity unavailable")
	ErrUnexpectedResponse  = errors.New("unexpected response from identity provider")
)

// Credential store
var (
	ErrSecretNotConfigured = errors.New("MFA secret not configured for profile")
	ErrSecretVault         = errors.New("secret vault error")
)

// Code generation
var (
	ErrInvalidSecret = errors.New("invalid MFA secret")
	ErrTotp          = errors.New("TOTP error")
)

// Enrollment and session
var (
	ErrNoQRFound          = errors.New("no QR code found")
	ErrQRDecodeFailed     = errors.New("failed to decode QR code")
	ErrSecretMissing      = errors.New("secret not found in QR code")
	ErrDeviceCreation     = errors.New("failed to create virtual MFA device")
	ErrEnableFailed       = errors.New("failed to enable MFA device")
	ErrVerificationFailed = errors.New("MFA device not found in IAM")
	ErrNoMFADevice        = errors.New("no MFA device found")
)

// Tunnel configuration
var (
	ErrTargetRequired      = errors.New("no target specified, add one to the sessions file or use --target")
	ErrConfigAlreadyExists = errors.New("configuration file already exists")
	ErrTargetNotFound      = errors.New("no running instance matches target")
	ErrTargetAmbiguous     = errors.New("more than one running instance matches target")
)

type ProfileNotFoundError struct {
	Name string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.Name)
}

type PortInUseError struct {
	Port uint16
}

func (e *PortInUseError) Error() string {
	return fmt.Sprintf("port already in use: %d", e.Port)
}

// IdentityCLIError is a failed call to the identity provider. Message is the
// provider's own error text (CLI stderr or API error message).
type IdentityCLIError struct {
	Message string
}

func (e *IdentityCLIError) Error() string {
	return fmt.Sprintf("AWS CLI error: %s", e.Message)
}

// Mark wraps err with msg and tags it with kind so errors.Is(result, kind)
// holds while the original cause stays in the chain.
func Mark(err error, kind error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, msg), kind)
}

func ProfileNotFound(name string) error {
	return &ProfileNotFoundError{Name: name}
}

func PortInUse(port uint16) error {
	return &PortInUseError{Port: port}
}
