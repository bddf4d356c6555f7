// Package awsclient builds the DynamoDB and SNS clients, pointing them at a
// local endpoint when running under SAM local.
package awsclient

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type Options struct {
	SAMLocal    bool
	EndpointURL string
}

// LocalEndpoint returns the endpoint override, or "" when the default AWS
// endpoints should be used.
func (o Options) LocalEndpoint() string {
	if !o.SAMLocal {
		return ""
	}
	return o.EndpointURL
}

type Clients struct {
	DynamoDB *dynamodb.Client
	SNS      *sns.Client
}

func New(ctx context.Context, opts Options) (*Clients, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewFromConfig(cfg, opts), nil
}

func NewFromConfig(cfg aws.Config, opts Options) *Clients {
	endpoint := opts.LocalEndpoint()
	if endpoint != "" {
		log.Printf("Running in SAM Local. Endpoint: %s", endpoint)
	}

	return &Clients{
		DynamoDB: dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
			if endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
			}
		}),
		SNS: sns.NewFromConfig(cfg, func(o *sns.Options) {
			if endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
			}
		}),
	}
}
