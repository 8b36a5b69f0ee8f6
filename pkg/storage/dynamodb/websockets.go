package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AddConnection records a live WebSocket connection id.
func (s *Store) AddConnection(ctx context.Context, connectionID string) error {
	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Item: map[string]types.AttributeValue{
			"connection_id": &types.AttributeValueMemberS{Value: connectionID},
		},
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("failed to add websocket connection: %w", err)
	}

	return nil
}

// RemoveConnection deletes a WebSocket connection id.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Key: map[string]types.AttributeValue{
			"connection_id": &types.AttributeValueMemberS{Value: connectionID},
		},
	}

	if _, err := s.Client.DeleteItem(ctx, input); err != nil {
		return fmt.Errorf("failed to remove websocket connection: %w", err)
	}

	return nil
}

// GetAllConnections retrieves all live WebSocket connection ids.
func (s *Store) GetAllConnections(ctx context.Context) ([]string, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.ConnectionsTableName),
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan websocket connections: %w", err)
	}

	var rows []struct {
		ConnectionID string `dynamodbav:"connection_id"`
	}
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal websocket connections: %w", err)
	}

	connectionIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		connectionIDs = append(connectionIDs, row.ConnectionID)
	}

	return connectionIDs, nil
}
