package database

import (
	"context"
	"testing"

	appconfig "eto_pipeline/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig(t *testing.T) {
	settings := appconfig.DynamoDB{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	}

	cfg, err := NewDynamoDBConfig(context.Background(), settings)
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)

	client := ConnectDynamoDB(context.Background(), settings)
	assert.NotNil(t, client)
}
