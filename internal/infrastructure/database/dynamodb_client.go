package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Options controls how the DynamoDB client is assembled. Zero values fall
// back to environment variables, which keeps local compose setups working
// without flags.

type Options struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

func optionsFromEnv() Options {
	opts := Options{
		Region:    os.Getenv("AWS_REGION"),
		Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}
	// Local DynamoDB ignores credentials but the SDK insists on having some.
	if opts.AccessKey == "" {
		opts.AccessKey = "local"
	}
	if opts.SecretKey == "" {
		opts.SecretKey = "local"
	}
	return opts
}

// ConnectDynamoDB builds the shared DynamoDB client from the environment.
// DYNAMODB_ENDPOINT, when set, points the client at a local instance
// (e.g. http://dynamodb:8000) instead of the AWS service endpoint.
func ConnectDynamoDB() *dynamodb.Client {
	client, err := NewDynamoDBClient(context.Background(), optionsFromEnv())
	if err != nil {
		log.Fatalf("[database][dynamodb] connect failed err=%v", err)
	}
	return client
}

func NewDynamoDBClient(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		),
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	if opts.Endpoint != "" {
		return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}), nil
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}
