package dynamo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"rssNotifier/internal/domain/entity"
	"rssNotifier/internal/domain/repository"
)

// Settings table layout: one item per checkpoint key.
const (
	KeyAttribute   = "settingName"
	ValueAttribute = "value"
)

// API is the subset of the DynamoDB client used here.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type checkpointRepository struct {
	client API
	table  string
}

func NewCheckpointRepository(client API, table string) repository.CheckpointRepository {
	return &checkpointRepository{
		client: client,
		table:  table,
	}
}

func (r *checkpointRepository) Get(ctx context.Context, key string) (entity.StoredValue, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			KeyAttribute: &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entity.StoredValue{}, fmt.Errorf("failed to get item from DynamoDB: %w", err)
	}

	if len(out.Item) == 0 {
		return entity.Absent(), nil
	}
	return storedValueFromAttribute(out.Item[ValueAttribute]), nil
}

func (r *checkpointRepository) Put(ctx context.Context, key string, value int64) error {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item: map[string]types.AttributeValue{
			KeyAttribute:   &types.AttributeValueMemberS{Value: key},
			ValueAttribute: &types.AttributeValueMemberN{Value: strconv.FormatInt(value, 10)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to put item to DynamoDB: %w", err)
	}
	return nil
}

func storedValueFromAttribute(av types.AttributeValue) entity.StoredValue {
	switch v := av.(type) {
	case nil:
		return entity.Absent()
	case *types.AttributeValueMemberNULL:
		return entity.Absent()
	case *types.AttributeValueMemberN:
		return entity.StoredValueFrom(json.Number(v.Value))
	case *types.AttributeValueMemberS:
		return entity.InvalidType("string (S)")
	case *types.AttributeValueMemberBOOL:
		return entity.InvalidType("boolean (BOOL)")
	case *types.AttributeValueMemberB:
		return entity.InvalidType("binary (B)")
	case *types.AttributeValueMemberM:
		return entity.InvalidType("map (M)")
	case *types.AttributeValueMemberL:
		return entity.InvalidType("list (L)")
	default:
		return entity.InvalidType(fmt.Sprintf("%T", av))
	}
}
