package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeVaultUpdate is for messages that report vault activity.
	MessageTypeVaultUpdate MessageType = "vaultUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// VaultUpdatePayload is the payload for a vaultUpdate message.
type VaultUpdatePayload struct {
	VaultID    uint64 `json:"vault_id"`
	Owner      string `json:"owner"`
	EventType  string `json:"event_type"`
	Gross      int64  `json:"gross"`
	Fee        int64  `json:"fee"`
	NewBalance int64  `json:"new_balance"`
}
