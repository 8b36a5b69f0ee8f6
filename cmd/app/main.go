package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/savings-vaults/pkg/fees"
	"github.com/chris/savings-vaults/pkg/handlers"
	wshandlers "github.com/chris/savings-vaults/pkg/handlers/websockets"
	"github.com/chris/savings-vaults/pkg/ledger"
	"github.com/chris/savings-vaults/pkg/notify"
	"github.com/chris/savings-vaults/pkg/storage"
	dydbstore "github.com/chris/savings-vaults/pkg/storage/dynamodb"
	"github.com/chris/savings-vaults/pkg/storage/memory"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	operatorID := os.Getenv("OPERATOR_ID")
	if operatorID == "" {
		log.Fatal("OPERATOR_ID environment variable not set")
	}

	store := newStore()
	notifier := newNotifier()

	service := ledger.NewService(store, notifier, operatorID)

	// Create our handler and mount it on a Chi router
	handler := handlers.NewApiHandler(service)
	router := handlers.NewRouter(handler, logger)

	// The local WebSocket endpoint is only available when the backend
	// tracks connections.
	if connManager, ok := store.(storage.WebSocketManager); ok {
		router.Handle("/ws", wshandlers.NewHandler(connManager))
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newStore builds the storage backend selected by VAULTS_BACKEND. The
// in-memory backend is the default so the server runs locally with no
// AWS credentials.
func newStore() storage.Storage {
	backend := os.Getenv("VAULTS_BACKEND")
	if backend == "" || backend == "memory" {
		feeBps := int64(0)
		if raw := os.Getenv("DEFAULT_FEE_BPS"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed < 0 || parsed > fees.MaxFeeBps {
				log.Fatalf("Invalid DEFAULT_FEE_BPS value %q", raw)
			}
			feeBps = parsed
		}
		return memory.New(feeBps)
	}

	if backend != "dynamodb" {
		log.Fatalf("Unknown VAULTS_BACKEND %q", backend)
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	vaultsTable := os.Getenv("DYNAMODB_VAULTS_TABLE_NAME")
	aggregateTable := os.Getenv("DYNAMODB_AGGREGATE_TABLE_NAME")
	ledgerTable := os.Getenv("DYNAMODB_LEDGER_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	if vaultsTable == "" || aggregateTable == "" || ledgerTable == "" || connectionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	return dydbstore.New(dbClient, vaultsTable, aggregateTable, ledgerTable, connectionsTable)
}

// newNotifier builds the SQS event notifier when a queue is configured,
// otherwise a no-op.
func newNotifier() notify.Notifier {
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Println("SQS_QUEUE_URL not set, vault events will not be published")
		return &notify.NoOpNotifier{}
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	return notify.NewSQSNotifier(sqs.NewFromConfig(cfg), sqsQueueURL)
}
