package config

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// ResolveKey returns the OpenAI API key, from AWS Secrets Manager when
// api_key_secret is set and from the environment otherwise.
func (c *OpenAIConfig) ResolveKey(ctx context.Context) (string, error) {
	if c.APIKeySecret != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load AWS config: %w", err)
		}

		smClient := secretsmanager.NewFromConfig(awsCfg)
		secret, err := smClient.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(c.APIKeySecret),
		})
		if err != nil {
			return "", fmt.Errorf("failed to fetch secret %s: %w", c.APIKeySecret, err)
		}

		return *secret.SecretString, nil
	}

	key := os.Getenv(c.APIKeyEnv)
	if key == "" {
		return "", fmt.Errorf("missing API key in env %s", c.APIKeyEnv)
	}

	return key, nil
}
