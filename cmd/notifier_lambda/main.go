package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/savings-vaults/pkg/notify"
	dydbstore "github.com/chris/savings-vaults/pkg/storage/dynamodb"
	"github.com/chris/savings-vaults/pkg/websockets"
	"github.com/joho/godotenv"
)

var publisher websockets.Publisher

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")
	if connectionsTable == "" {
		log.Fatal("DYNAMODB_CONNECTIONS_TABLE_NAME environment variable not set")
	}

	apiEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT")
	if apiEndpoint == "" {
		log.Fatal("WEBSOCKET_API_ENDPOINT environment variable not set")
	}

	// Only the connections table is used here; the vault tables stay empty.
	store := dydbstore.New(dbClient, "", "", "", connectionsTable)

	publisher, err = websockets.NewPublisher(store, store, apiEndpoint)
	if err != nil {
		log.Fatalf("failed to create websocket publisher: %v", err)
	}
}

// HandleRequest fans vault events out to every connected WebSocket client.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var event notify.VaultEvent
		if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
			log.Printf("ERROR: failed to unmarshal vault event from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message.
			return err
		}

		msg := websockets.Message{
			Type: websockets.MessageTypeVaultUpdate,
			Payload: websockets.VaultUpdatePayload{
				VaultID:    event.VaultID,
				Owner:      event.Owner,
				EventType:  string(event.Type),
				Gross:      event.Gross,
				Fee:        event.Fee,
				NewBalance: event.NewBalance,
			},
		}

		if err := publisher.Publish(ctx, msg); err != nil {
			log.Printf("ERROR: failed to broadcast vault event %s: %v", event.EventID, err)
			return err
		}

		log.Printf("Broadcast vault event %s for vault %d", event.EventID, event.VaultID)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
