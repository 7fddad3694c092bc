package mfa

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/spf13/afero"

	"github.com/tatran0195/akaw/internal/apperr"
)

// QRDecoder turns a QR code image file into the text it encodes.
type QRDecoder interface {
	Decode(path string) (string, error)
}

// SecretParser extracts the shared secret from an otpauth:// URI.
type SecretParser interface {
	Parse(uri string) (string, error)
}

// ZXingDecoder decodes the first QR code found in a PNG or JPEG image.
type ZXingDecoder struct {
	Fs afero.Fs
}

func NewZXingDecoder(fs afero.Fs) *ZXingDecoder {
	return &ZXingDecoder{Fs: fs}
}

func (d *ZXingDecoder) Decode(path string) (string, error) {
	data, err := afero.ReadFile(d.Fs, path)
	if err != nil {
		return "", apperr.Mark(err, apperr.ErrQRDecodeFailed, "failed to open image")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", apperr.Mark(err, apperr.ErrQRDecodeFailed, "failed to read image "+path)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", apperr.Mark(err, apperr.ErrQRDecodeFailed, "failed to prepare image")
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		var notFound gozxing.NotFoundException
		if errors.As(err, &notFound) {
			return "", apperr.Mark(err, apperr.ErrNoQRFound, "no QR code in "+path)
		}
		return "", apperr.Mark(err, apperr.ErrQRDecodeFailed, "failed to decode QR code")
	}
	return result.GetText(), nil
}

// URIParser reads the secret query parameter of an otpauth URI.
type URIParser struct{}

func (URIParser) Parse(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", apperr.Mark(err, apperr.ErrQRDecodeFailed, "invalid OTP URI")
	}
	secret := parsed.Query().Get("secret")
	if secret == "" {
		return "", apperr.ErrSecretMissing
	}
	return secret, nil
}
