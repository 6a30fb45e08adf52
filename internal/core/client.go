package core

// Update is pushed to subscribers when a room's log changes. The payload
// carries the full history snapshot so late subscribers stay consistent.
type Update struct {
	Room string
	Chat []string
}

// Client is a realtime connection as seen by the core layer.
type Client struct {
	ID     string
	Events chan Update
}

// NewClient constructs a client with a buffered event channel.
func NewClient(id string) *Client {
	return &Client{
		ID:     id,
		Events: make(chan Update, 8),
	}
}
