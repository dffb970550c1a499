package source

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/uts-harness/runconfig/framework"
)

const (
	// Schema of the DynamoDB table: one item per document, keyed by name.
	tablePartitionKey = "key"
	itemAttribute     = "item"
)

// DynamoDBItemGetter is the part of the DynamoDB API that a dynamodb source uses.
// *dynamodb.DynamoDB implements it.
type DynamoDBItemGetter interface {
	GetItemWithContext(ctx aws.Context, input *dynamodb.GetItemInput, opts ...request.Option) (
		*dynamodb.GetItemOutput, error)
}

type dynamoDBSource struct {
	location string
	table    string
	key      string
	client   DynamoDBItemGetter
	logger   framework.Logger
}

func newDynamoDBSource(u *url.URL, opts openOptions) (*dynamoDBSource, error) {
	if u.Host == "" {
		return nil, fmt.Errorf("configuration location %q does not name a table", redactLocation(u))
	}
	key, err := keyFromPath(u)
	if err != nil {
		return nil, err
	}
	client := opts.dynamoDB
	if client == nil {
		config := aws.NewConfig()
		if region := u.Query().Get("region"); region != "" {
			config = config.WithRegion(region)
		}
		if endpoint := u.Query().Get("endpoint"); endpoint != "" {
			config = config.WithEndpoint(endpoint)
		}
		sess, err := session.NewSession(config)
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}
		client = dynamodb.New(sess)
	}
	return &dynamoDBSource{location: redactLocation(u), table: u.Host, key: key, client: client, logger: opts.logger}, nil
}

func (s *dynamoDBSource) Location() string { return s.location }

func (s *dynamoDBSource) Read(ctx context.Context) ([]byte, error) {
	s.logger.Printf("reading DynamoDB item %q from table %q", s.key, s.table)
	result, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		ConsistentRead: aws.Bool(true),
		Key: map[string]*dynamodb.AttributeValue{
			tablePartitionKey: {S: aws.String(s.key)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("DynamoDB get of %q failed: %w", s.key, err)
	}
	if len(result.Item) == 0 {
		return nil, fmt.Errorf("%w: no DynamoDB item %q in table %q", ErrNotFound, s.key, s.table)
	}
	attr := result.Item[itemAttribute]
	if attr == nil || attr.S == nil {
		return nil, fmt.Errorf("DynamoDB item %q has no string attribute %q", s.key, itemAttribute)
	}
	return []byte(*attr.S), nil
}
