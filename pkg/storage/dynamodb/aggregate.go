package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/savings-vaults/pkg/models"
)

// aggregateRecordID keys the singleton accounting record. Exactly one item
// under this key exists per deployment.
const aggregateRecordID = "GLOBAL"

func aggregateKey() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"stats_id": &types.AttributeValueMemberS{Value: aggregateRecordID},
	}
}

// GetAggregateStats retrieves the accounting record. A deployment that has
// never mutated anything has no item yet and reports zero counters.
func (s *Store) GetAggregateStats(ctx context.Context) (*models.AggregateStats, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.AggregateTableName),
		Key:       aggregateKey(),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get aggregate record from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return &models.AggregateStats{}, nil
	}

	var stats models.AggregateStats
	if err := attributevalue.UnmarshalMap(result.Item, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal aggregate record: %w", err)
	}

	return &stats, nil
}

// SetFeeBps persists a new fee rate on the aggregate record, creating the
// record if this deployment has never written it.
func (s *Store) SetFeeBps(ctx context.Context, feeBps int64) error {
	input := &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.AggregateTableName),
		Key:              aggregateKey(),
		UpdateExpression: aws.String("SET fee_bps = :bps, version = if_not_exists(version, :zero) + :inc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bps":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", feeBps)},
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":inc":  &types.AttributeValueMemberN{Value: "1"},
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("failed to update fee rate in DynamoDB: %w", err)
	}

	return nil
}
