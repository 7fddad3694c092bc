package mfa

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/internal/identity"
)

// StepWait is the pause between the two enablement codes: one full TOTP step.
const StepWait = 30 * time.Second

type CodeGenerator interface {
	Generate(secret string) (string, error)
}

// Enroller registers virtual MFA devices and imports existing ones.
type Enroller struct {
	Identity identity.Provider
	Codes    CodeGenerator
	Decoder  QRDecoder
	Parser   SecretParser
	Fs       afero.Fs
	TempDir  string
	Logger   *zap.Logger

	wait  time.Duration
	sleep func(ctx context.Context, d time.Duration) error
}

func NewEnroller(provider identity.Provider, codes CodeGenerator, fs afero.Fs, logger *zap.Logger) *Enroller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enroller{
		Identity: provider,
		Codes:    codes,
		Decoder:  NewZXingDecoder(fs),
		Parser:   URIParser{},
		Fs:       fs,
		TempDir:  os.TempDir(),
		Logger:   logger,
		wait:     StepWait,
		sleep:    sleepContext,
	}
}

// SetupDevice creates a virtual MFA device named after username, enables it
// with two consecutive codes and confirms IAM lists it. It returns the device
// serial and the shared secret. A device created in IAM is not rolled back
// when a later step fails.
func (e *Enroller) SetupDevice(ctx context.Context, username, profile string) (serial, secret string, err error) {
	qrPath := e.QRPath(profile)
	defer e.cleanup(qrPath)

	device, err := e.Identity.CreateVirtualMFADevice(ctx, profile, username, qrPath)
	if err != nil {
		return "", "", apperr.Mark(err, apperr.ErrDeviceCreation, "failed to create virtual MFA device")
	}
	serial = device.SerialNumber
	e.Logger.Info("virtual MFA device created", zap.String("profile", profile), zap.String("serial", serial))

	secret, err = e.extractSecret(qrPath)
	if err != nil {
		return "", "", err
	}

	code1, code2, err := e.consecutiveCodes(ctx, secret)
	if err != nil {
		return "", "", err
	}

	if err := e.Identity.EnableMFADevice(ctx, profile, username, serial, code1, code2); err != nil {
		return "", "", apperr.Mark(err, apperr.ErrEnableFailed, "failed to enable MFA device")
	}

	if err := e.verify(ctx, username, profile, serial); err != nil {
		return "", "", err
	}
	e.Logger.Info("MFA device enabled", zap.String("profile", profile), zap.String("serial", serial))

	return serial, secret, nil
}

// ImportQRCode reads the secret from an existing device's QR code image.
func (e *Enroller) ImportQRCode(path string) (string, error) {
	return e.extractSecret(path)
}

// FetchSerial returns the serial of the user's first MFA device.
func (e *Enroller) FetchSerial(ctx context.Context, username, profile string) (string, error) {
	devices, err := e.Identity.ListMFADevices(ctx, profile, username)
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", errors.Mark(errors.Newf("no MFA device found for user %s", username), apperr.ErrNoMFADevice)
	}
	return devices[0].SerialNumber, nil
}

func (e *Enroller) QRPath(profile string) string {
	return filepath.Join(e.TempDir, "akaw-qr-"+profile+".png")
}

func (e *Enroller) extractSecret(path string) (string, error) {
	uri, err := e.Decoder.Decode(path)
	if err != nil {
		return "", err
	}
	return e.Parser.Parse(uri)
}

func (e *Enroller) consecutiveCodes(ctx context.Context, secret string) (string, string, error) {
	code1, err := e.Codes.Generate(secret)
	if err != nil {
		return "", "", err
	}

	e.Logger.Info("waiting for the next TOTP step", zap.Duration("wait", e.wait))
	if err := e.sleep(ctx, e.wait); err != nil {
		return "", "", errors.Wrap(err, "interrupted while waiting for second code")
	}

	code2, err := e.Codes.Generate(secret)
	if err != nil {
		return "", "", err
	}
	return code1, code2, nil
}

func (e *Enroller) verify(ctx context.Context, username, profile, serial string) error {
	devices, err := e.Identity.ListMFADevices(ctx, profile, username)
	if err != nil {
		return apperr.Mark(err, apperr.ErrVerificationFailed, "failed to list MFA devices")
	}
	for _, d := range devices {
		if d.SerialNumber == serial {
			return nil
		}
	}
	return errors.Mark(errors.Newf("MFA device %s not found in IAM", serial), apperr.ErrVerificationFailed)
}

func (e *Enroller) cleanup(path string) {
	if err := e.Fs.Remove(path); err != nil && !os.IsNotExist(err) {
		e.Logger.Debug("failed to remove QR code file", zap.String("path", path), zap.Error(err))
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
