package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/savings-vaults/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the Store. It
// exists so tests can substitute a mock for the real client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the storage interfaces using AWS DynamoDB. Per-vault
// serialization comes from conditional writes on the record version; the
// vault update, the aggregate counters, and the audit entry commit in one
// TransactWriteItems call.
type Store struct {
	Client               DynamoDBAPI
	VaultsTableName      string
	AggregateTableName   string
	LedgerTableName      string
	ConnectionsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, vaultsTable, aggregateTable, ledgerTable, connectionsTable string) *Store {
	return &Store{
		Client:               client,
		VaultsTableName:      vaultsTable,
		AggregateTableName:   aggregateTable,
		LedgerTableName:      ledgerTable,
		ConnectionsTableName: connectionsTable,
	}
}

// Make sure we conform to the interfaces
var _ storage.Storage = (*Store)(nil)
var _ storage.WebSocketManager = (*Store)(nil)
