package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/savings-vaults/pkg/models"
	"github.com/chris/savings-vaults/pkg/storage"
)

// CreateVault allocates the next vault id from the aggregate record and
// inserts the vault, atomically. The counter update is conditioned on the
// value we read, so two concurrent creates can never share an id; the loser
// gets ErrVersionConflict and retries with a fresh read.
func (s *Store) CreateVault(ctx context.Context, vault *models.Vault) (*models.Vault, error) {
	// 1. Read the current counter to allocate the next id.
	stats, err := s.GetAggregateStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read aggregate record for id allocation: %w", err)
	}

	// 2. Complete the vault record with server-side details.
	v := *vault
	v.Id = stats.VaultCounter + 1
	v.Balance = 0
	v.IsActive = true
	v.Version = 1

	vaultAV, err := attributevalue.MarshalMap(&v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vault: %w", err)
	}

	// 3. Insert the vault and advance the counter as one unit.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.VaultsTableName),
					Item:                vaultAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(s.AggregateTableName),
					Key:                 aggregateKey(),
					UpdateExpression:    aws.String("SET vault_counter = :next"),
					ConditionExpression: aws.String("attribute_not_exists(vault_counter) OR vault_counter = :current"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":next":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", v.Id)},
						":current": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", stats.VaultCounter)},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConditionalCancellation(err) {
			return nil, storage.ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to execute create-vault transaction: %w", err)
	}

	return &v, nil
}

// GetVault retrieves a vault from DynamoDB by its id.
func (s *Store) GetVault(ctx context.Context, vaultID uint64) (*models.Vault, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.VaultsTableName),
		Key:       vaultKey(vaultID),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get vault from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrVaultNotFound
	}

	var vault models.Vault
	if err := attributevalue.UnmarshalMap(result.Item, &vault); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vault: %w", err)
	}

	return &vault, nil
}

// ListVaults retrieves all vaults from DynamoDB.
func (s *Store) ListVaults(ctx context.Context) ([]models.Vault, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.VaultsTableName),
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan vaults table: %w", err)
	}

	var vaults []models.Vault
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &vaults); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vaults: %w", err)
	}

	return vaults, nil
}

// ApplyDeposit credits the vault, bumps the aggregate counters, and appends
// the audit entry in a single TransactWriteItems call. Deposits are
// additive, so the update carries no version condition; it fails only if
// the vault went inactive or the credit would overflow the balance.
func (s *Store) ApplyDeposit(ctx context.Context, vault *models.Vault, entry *models.LedgerEntry) (*models.Vault, error) {
	entryAV, err := marshalEntry(entry)
	if err != nil {
		return nil, err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(s.VaultsTableName),
					Key:                 vaultKey(vault.Id),
					UpdateExpression:    aws.String("SET balance = balance + :net, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("is_active = :active AND balance <= :headroom"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":net":      &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", entry.Net)},
						":inc":      &types.AttributeValueMemberN{Value: "1"},
						":now":      timeAV(entry.Timestamp),
						":active":   &types.AttributeValueMemberBOOL{Value: true},
						":headroom": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", math.MaxInt64-entry.Net)},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(s.AggregateTableName),
					Key:       aggregateKey(),
					UpdateExpression: aws.String(
						"SET total_fees_collected = if_not_exists(total_fees_collected, :zero) + :fee, " +
							"total_net_deposited = if_not_exists(total_net_deposited, :zero) + :net"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":fee":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", entry.Fee)},
						":net":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", entry.Net)},
						":zero": &types.AttributeValueMemberN{Value: "0"},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.LedgerTableName),
					Item:                entryAV,
					ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConditionalCancellation(err) {
			return nil, storage.ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to execute deposit transaction: %w", err)
	}

	updated := *vault
	updated.Balance += entry.Net
	updated.Version++
	updated.UpdatedAt = entry.Timestamp
	return &updated, nil
}

// ApplyWithdrawal empties the vault, flips it inactive, bumps the aggregate
// withdrawal counter, and appends the audit entry as one unit. The inactive
// flag and the zeroed balance land in the same conditional write, so readers
// never observe one without the other.
func (s *Store) ApplyWithdrawal(ctx context.Context, vault *models.Vault, entry *models.LedgerEntry) (*models.Vault, error) {
	entryAV, err := marshalEntry(entry)
	if err != nil {
		return nil, err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(s.VaultsTableName),
					Key:                 vaultKey(vault.Id),
					UpdateExpression:    aws.String("SET balance = :zero, is_active = :inactive, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("is_active = :active AND version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":zero":     &types.AttributeValueMemberN{Value: "0"},
						":inactive": &types.AttributeValueMemberBOOL{Value: false},
						":inc":      &types.AttributeValueMemberN{Value: "1"},
						":now":      timeAV(entry.Timestamp),
						":active":   &types.AttributeValueMemberBOOL{Value: true},
						":version":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", vault.Version)},
					},
				},
			},
			{
				Update: &types.Update{
					TableName:        aws.String(s.AggregateTableName),
					Key:              aggregateKey(),
					UpdateExpression: aws.String("SET total_withdrawn = if_not_exists(total_withdrawn, :zero) + :net"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":net":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", entry.Net)},
						":zero": &types.AttributeValueMemberN{Value: "0"},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.LedgerTableName),
					Item:                entryAV,
					ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConditionalCancellation(err) {
			return nil, storage.ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to execute withdrawal transaction: %w", err)
	}

	updated := *vault
	updated.Balance = 0
	updated.IsActive = false
	updated.Version++
	updated.UpdatedAt = entry.Timestamp
	return &updated, nil
}

// timeAV marshals a timestamp the same way attributevalue does for
// time.Time fields, so expression values and stored attributes compare
// consistently.
func timeAV(t time.Time) types.AttributeValue {
	text, _ := t.MarshalText()
	return &types.AttributeValueMemberS{Value: string(text)}
}

func vaultKey(vaultID uint64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", vaultID)},
	}
}

func marshalEntry(entry *models.LedgerEntry) (map[string]types.AttributeValue, error) {
	e := *entry
	if e.GSI1PK == "" {
		e.GSI1PK = LedgerPartition
	}
	entryAV, err := attributevalue.MarshalMap(&e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ledger entry: %w", err)
	}
	return entryAV, nil
}

// isConditionalCancellation reports whether a TransactWriteItems error was a
// lost conditional check, i.e. a race with a concurrent mutation (or a vault
// that went inactive between read and write). Callers re-read and retry.
func isConditionalCancellation(err error) bool {
	var txc *types.TransactionCanceledException
	if !errors.As(err, &txc) {
		return false
	}
	for _, reason := range txc.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
