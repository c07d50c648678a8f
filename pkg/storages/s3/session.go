package s3

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/defaults"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
)

const defaultRegion = "us-east-1"

// Given an S3 bucket name, attempt to determine its region
func findBucketRegion(bucket string, config *aws.Config) (string, error) {
	input := s3.GetBucketLocationInput{
		Bucket: aws.String(bucket),
	}

	sess, err := session.NewSession(config.Copy().WithRegion(defaultRegion))
	if err != nil {
		return "", err
	}

	output, err := s3.New(sess).GetBucketLocation(&input)
	if err != nil {
		return "", err
	}

	if output.LocationConstraint == nil {
		// buckets in "US Standard", a.k.a. us-east-1, are returned as a nil region
		return defaultRegion, nil
	}
	// all other regions are strings
	return *output.LocationConstraint, nil
}

func getAWSRegion(config *Config, awsConfig *aws.Config) (string, error) {
	if config.Region != "" {
		return config.Region, nil
	}
	if config.Endpoint == "" {
		region, err := findBucketRegion(config.Bucket, awsConfig)
		return region, errors.Wrapf(err, "%s is not set and s3:GetBucketLocation failed", RegionSetting)
	}
	// For S3 compatible services like Minio, Ceph etc. use `us-east-1` as region
	return defaultRegion, nil
}

func createSession(config *Config) (*session.Session, error) {
	s, err := session.NewSession()
	if err != nil {
		return nil, err
	}

	awsConfig := request.WithRetryer(s.Config, client.DefaultRetryer{NumMaxRetries: config.MaxRetries})

	if config.AccessKeyID != "" && config.SecretAccessKey != "" {
		provider := &credentials.StaticProvider{Value: credentials.Value{
			AccessKeyID:     config.AccessKeyID,
			SecretAccessKey: config.SecretAccessKey,
			SessionToken:    config.SessionToken,
		}}
		providers := []credentials.Provider{provider}
		providers = append(providers, defaults.CredProviders(awsConfig, defaults.Handlers())...)
		awsConfig = awsConfig.WithCredentials(credentials.NewCredentials(&credentials.ChainProvider{
			VerboseErrors: aws.BoolValue(awsConfig.CredentialsChainVerboseErrors),
			Providers:     providers,
		}))
	}

	if config.Endpoint != "" {
		awsConfig = awsConfig.WithEndpoint(config.Endpoint)
	}
	awsConfig.S3ForcePathStyle = aws.Bool(config.ForcePathStyle)

	region, err := getAWSRegion(config, awsConfig)
	if err != nil {
		return nil, err
	}
	s.Config = awsConfig.WithRegion(region)
	return s, nil
}

func parseBoolSetting(settings map[string]string, key string, defaultValue bool) (bool, error) {
	raw, ok := settings[key]
	if !ok || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Wrapf(err, "failed to parse %s", key)
	}
	return value, nil
}

func parseIntSetting(settings map[string]string, key string, defaultValue int) (int, error) {
	raw, ok := settings[key]
	if !ok || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse %s", key)
	}
	return value, nil
}
