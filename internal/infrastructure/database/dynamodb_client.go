package database

import (
	"context"
	"log"

	appconfig "eto_pipeline/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the loaded settings.
// An empty Endpoint targets AWS; set it to reach DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, settings appconfig.DynamoDB) *dynamodb.Client {
	cfg, err := NewDynamoDBConfig(ctx, settings)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfig(ctx context.Context, settings appconfig.DynamoDB) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(settings.Region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint := settings.Endpoint; endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
		log.Printf("[database][dynamodb] using custom endpoint=%s region=%s", endpoint, settings.Region)
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
