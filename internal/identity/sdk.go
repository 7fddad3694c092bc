package identity

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/models"
)

type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
	GetSessionToken(ctx context.Context, params *sts.GetSessionTokenInput, optFns ...func(*sts.Options)) (*sts.GetSessionTokenOutput, error)
}

type IAMAPI interface {
	CreateVirtualMFADevice(ctx context.Context, params *iam.CreateVirtualMFADeviceInput, optFns ...func(*iam.Options)) (*iam.CreateVirtualMFADeviceOutput, error)
	EnableMFADevice(ctx context.Context, params *iam.EnableMFADeviceInput, optFns ...func(*iam.Options)) (*iam.EnableMFADeviceOutput, error)
	ListMFADevices(ctx context.Context, params *iam.ListMFADevicesInput, optFns ...func(*iam.Options)) (*iam.ListMFADevicesOutput, error)
}

// ClientFactory builds STS and IAM clients for a shared-config profile.
type ClientFactory func(ctx context.Context, profile string) (STSAPI, IAMAPI, error)

// SDKProvider talks to IAM and STS through aws-sdk-go-v2 using the same
// shared config files as the CLI.
type SDKProvider struct {
	Clients ClientFactory
	Fs      afero.Fs
	Logger  *zap.Logger
}

func NewSDKProvider(defaultRegion string, fs afero.Fs, logger *zap.Logger) *SDKProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SDKProvider{
		Clients: SharedConfigClients(defaultRegion),
		Fs:      fs,
		Logger:  logger,
	}
}

// SharedConfigClients loads ~/.aws/config for the profile. IAM and STS are
// global, so defaultRegion only matters when the profile sets none.
func SharedConfigClients(defaultRegion string) ClientFactory {
	return func(ctx context.Context, profile string) (STSAPI, IAMAPI, error) {
		opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithDefaultRegion(defaultRegion)}
		if profile != "" {
			opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load AWS config for profile %q: %w", profile, err)
		}
		return sts.NewFromConfig(cfg), iam.NewFromConfig(cfg), nil
	}
}

func (p *SDKProvider) GetCallerIdentity(ctx context.Context, profile string) (*models.CallerIdentity, error) {
	stsClient, _, err := p.clients(ctx, profile)
	if err != nil {
		return nil, err
	}
	out, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, apiError(err)
	}
	if out.Arn == nil {
		return nil, unexpected("no Arn in identity response")
	}
	return &models.CallerIdentity{
		UserID:  aws.ToString(out.UserId),
		Account: aws.ToString(out.Account),
		Arn:     aws.ToString(out.Arn),
	}, nil
}

// CreateVirtualMFADevice writes the returned QR code PNG to outfile, the way
// the CLI's --outfile does.
func (p *SDKProvider) CreateVirtualMFADevice(ctx context.Context, profile, deviceName, outfile string) (*models.VirtualMFADevice, error) {
	_, iamClient, err := p.clients(ctx, profile)
	if err != nil {
		return nil, err
	}
	out, err := iamClient.CreateVirtualMFADevice(ctx, &iam.CreateVirtualMFADeviceInput{
		VirtualMFADeviceName: aws.String(deviceName),
	})
	if err != nil {
		return nil, apiError(err)
	}
	if out.VirtualMFADevice == nil || out.VirtualMFADevice.SerialNumber == nil {
		return nil, unexpected("no virtual MFA device in response")
	}
	if len(out.VirtualMFADevice.QRCodePNG) == 0 {
		return nil, unexpected("no QR code in virtual MFA device response")
	}
	if err := afero.WriteFile(p.Fs, outfile, out.VirtualMFADevice.QRCodePNG, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write QR code to %s: %w", outfile, err)
	}

	return &models.VirtualMFADevice{SerialNumber: aws.ToString(out.VirtualMFADevice.SerialNumber)}, nil
}

func (p *SDKProvider) EnableMFADevice(ctx context.Context, profile, username, serial, code1, code2 string) error {
	_, iamClient, err := p.clients(ctx, profile)
	if err != nil {
		return err
	}
	_, err = iamClient.EnableMFADevice(ctx, &iam.EnableMFADeviceInput{
		UserName:            aws.String(username),
		SerialNumber:        aws.String(serial),
		AuthenticationCode1: aws.String(code1),
		AuthenticationCode2: aws.String(code2),
	})
	if err != nil {
		return apiError(err)
	}
	return nil
}

func (p *SDKProvider) ListMFADevices(ctx context.Context, profile, username string) ([]models.MFADevice, error) {
	_, iamClient, err := p.clients(ctx, profile)
	if err != nil {
		return nil, err
	}
	out, err := iamClient.ListMFADevices(ctx, &iam.ListMFADevicesInput{UserName: aws.String(username)})
	if err != nil {
		return nil, apiError(err)
	}

	devices := make([]models.MFADevice, 0, len(out.MFADevices))
	for _, d := range out.MFADevices {
		devices = append(devices, models.MFADevice{
			UserName:     aws.ToString(d.UserName),
			SerialNumber: aws.ToString(d.SerialNumber),
			EnableDate:   aws.ToTime(d.EnableDate),
		})
	}
	return devices, nil
}

// GetSessionToken never sets DurationSeconds; STS applies its default.
func (p *SDKProvider) GetSessionToken(ctx context.Context, profile, serial, tokenCode string) (*models.SessionCredentials, error) {
	stsClient, _, err := p.clients(ctx, profile)
	if err != nil {
		return nil, err
	}
	out, err := stsClient.GetSessionToken(ctx, &sts.GetSessionTokenInput{
		SerialNumber: aws.String(serial),
		TokenCode:    aws.String(tokenCode),
	})
	if err != nil {
		return nil, apiError(err)
	}
	if out.Credentials == nil {
		return nil, unexpected("no credentials in response")
	}
	return &models.SessionCredentials{
		AccessKeyID:     aws.ToString(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(out.Credentials.SecretAccessKey),
		SessionToken:    aws.ToString(out.Credentials.SessionToken),
		Expiration:      aws.ToTime(out.Credentials.Expiration).UTC(),
	}, nil
}

func (p *SDKProvider) clients(ctx context.Context, profile string) (STSAPI, IAMAPI, error) {
	stsClient, iamClient, err := p.Clients(ctx, profile)
	if err != nil {
		p.Logger.Debug("failed to build AWS clients", zap.String("profile", profile), zap.Error(err))
		return nil, nil, &apperr.IdentityCLIError{Message: err.Error()}
	}
	return stsClient, iamClient, nil
}

func apiError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &apperr.IdentityCLIError{Message: fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())}
	}
	return &apperr.IdentityCLIError{Message: err.Error()}
}
