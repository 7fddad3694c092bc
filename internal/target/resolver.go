package target

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/cockroachdb/errors"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/models"
)

const (
	InstanceStateName = "instance-state-name"
	RunningState      = "running"
	TagName           = "Name"
)

const (
	ErrRequestExpired      = "AWS request expired (likely due to clock skew or expired credentials). Current system time: %s. Please verify your system clock or refresh AWS credentials: %w"
	ErrAuthFailure         = "AWS authentication failed. Please verify your credentials and IAM permissions: %w"
	ErrRegionNotEnabled    = "AWS region is not enabled. Please opt-in for this region in your AWS account: %w"
	ErrMaxAttemptsExceeded = "AWS request failed after multiple retries. This could be due to network issues, credential problems, or AWS service disruption: %w"
	ErrOperationFailed     = "AWS operation failed: %w"
	ErrDescribeInstances   = "failed to look up instances: %w"
)

const (
	CodeRequestExpired = "RequestExpired"
	CodeAuthFailure    = "AuthFailure"
	CodeUnauthorized   = "UnauthorizedOperation"
	CodeOptInRequired  = "OptInRequired"
)

type EC2DescribeInstancesAPI interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// EC2ClientFactory builds an EC2 client signed with the given session credentials.
type EC2ClientFactory func(ctx context.Context, creds *models.SessionCredentials, region string) (EC2DescribeInstancesAPI, error)

// Resolver turns a tunnel target given as an EC2 Name tag into an instance ID.
// Instance and managed-instance IDs are returned unchanged.
type Resolver struct {
	Clients EC2ClientFactory
}

func NewResolver() *Resolver {
	return &Resolver{Clients: StaticCredentialsEC2Client}
}

func StaticCredentialsEC2Client(ctx context.Context, creds *models.SessionCredentials, region string) (EC2DescribeInstancesAPI, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	if creds != nil {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return ec2.NewFromConfig(cfg), nil
}

// NeedsLookup reports whether target is an instance Name tag rather than an
// SSM target id. Instance ids (i-, mi-) and prefixed ids such as
// ecs:<cluster>_<task>_<runtime> go to SSM unchanged.
func NeedsLookup(target string) bool {
	if target == "" || strings.Contains(target, ":") {
		return false
	}
	return !strings.HasPrefix(target, "i-") && !strings.HasPrefix(target, "mi-")
}

func (r *Resolver) Resolve(ctx context.Context, creds *models.SessionCredentials, region, target string) (string, error) {
	if !NeedsLookup(target) {
		return target, nil
	}

	client, err := r.Clients(ctx, creds, region)
	if err != nil {
		return "", err
	}

	result, err := client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{Name: aws.String("tag:" + TagName), Values: []string{target}},
			{Name: aws.String(InstanceStateName), Values: []string{RunningState}},
		},
	})
	if err != nil {
		return "", handleAWSError(err)
	}

	instances := collectInstances(result.Reservations)
	switch len(instances) {
	case 0:
		return "", errors.Mark(errors.Newf("no running instance named %q", target), apperr.ErrTargetNotFound)
	case 1:
		return instances[0].InstanceID, nil
	default:
		ids := make([]string, 0, len(instances))
		for _, inst := range instances {
			ids = append(ids, inst.InstanceID)
		}
		return "", errors.Mark(
			errors.Newf("%d running instances named %q: %s", len(instances), target, strings.Join(ids, ", ")),
			apperr.ErrTargetAmbiguous,
		)
	}
}

func handleAWSError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case CodeRequestExpired:
			return fmt.Errorf(ErrRequestExpired, time.Now().Format(time.RFC3339), err)
		case CodeAuthFailure, CodeUnauthorized:
			return fmt.Errorf(ErrAuthFailure, err)
		case CodeOptInRequired:
			return fmt.Errorf(ErrRegionNotEnabled, err)
		}
	}

	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		if strings.Contains(err.Error(), "exceeded maximum number of attempts") {
			return fmt.Errorf(ErrMaxAttemptsExceeded, err)
		}
		return fmt.Errorf(ErrOperationFailed, err)
	}

	return fmt.Errorf(ErrDescribeInstances, err)
}

func collectInstances(reservations []types.Reservation) []models.EC2Instance {
	var instances []models.EC2Instance
	for _, reservation := range reservations {
		for _, instance := range reservation.Instances {
			if instance.InstanceId == nil {
				continue
			}
			inst := models.EC2Instance{
				InstanceID:       aws.ToString(instance.InstanceId),
				PrivateIPAddress: aws.ToString(instance.PrivateIpAddress),
			}
			if instance.State != nil {
				inst.State = string(instance.State.Name)
			}
			for _, tag := range instance.Tags {
				if aws.ToString(tag.Key) == TagName {
					inst.Name = aws.ToString(tag.Value)
				}
			}
			instances = append(instances, inst)
		}
	}

	sort.Slice(instances, func(i, j int) bool {
		return instances[i].InstanceID < instances[j].InstanceID
	})
	return instances
}
