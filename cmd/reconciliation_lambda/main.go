package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/savings-vaults/pkg/storage"
	dydbstore "github.com/chris/savings-vaults/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.Storage

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)

	vaultsTable := os.Getenv("DYNAMODB_VAULTS_TABLE_NAME")
	aggregateTable := os.Getenv("DYNAMODB_AGGREGATE_TABLE_NAME")
	ledgerTable := os.Getenv("DYNAMODB_LEDGER_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	store = dydbstore.New(dbClient, vaultsTable, aggregateTable, ledgerTable, connectionsTable)
}

// HandleRequest is triggered by an EventBridge Schedule. It checks the
// conservation of funds: the sum of live balances must equal total net
// deposits minus total withdrawals, and retired vaults must hold zero.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting vault reconciliation...")

	vaults, err := store.ListVaults(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list vaults: %v", err)
		return err
	}

	stats, err := store.GetAggregateStats(ctx)
	if err != nil {
		log.Printf("ERROR: failed to get aggregate stats: %v", err)
		return err
	}

	var totalHeld int64
	var active, retired uint64
	var violations int

	for _, vault := range vaults {
		if vault.IsActive {
			active++
			totalHeld += vault.Balance
			continue
		}

		retired++
		if vault.Balance != 0 {
			violations++
			log.Printf("VIOLATION: retired vault %d holds balance %d", vault.Id, vault.Balance)
		}
	}

	if counted := active + retired; counted != stats.VaultCounter {
		violations++
		log.Printf("VIOLATION: vault counter is %d but %d vaults exist", stats.VaultCounter, counted)
	}

	expectedHeld := stats.TotalNetDeposited - stats.TotalWithdrawn
	if totalHeld != expectedHeld {
		violations++
		log.Printf("VIOLATION: live balances sum to %d, expected %d (net deposited %d, withdrawn %d)",
			totalHeld, expectedHeld, stats.TotalNetDeposited, stats.TotalWithdrawn)
	}

	if violations > 0 {
		// Failing the invocation surfaces the discrepancy through the
		// lambda's error alarm.
		return fmt.Errorf("reconciliation found %d violation(s) across %d vaults", violations, len(vaults))
	}

	log.Printf("Reconciliation clean: %d active, %d retired, %d held", active, retired, totalHeld)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
