package proto

// Inbound is the envelope for control messages coming from the client.
type Inbound struct {
	Type string `json:"type"`
	Room string `json:"roomName"`
}

const (
	InboundTypeSubscribe = "subscribe"

	OutboundTypeUpdate = "update"
	OutboundTypeError  = "error"
)

// Update is pushed to subscribers whenever their room's log changes.
// It carries the full history snapshot, not just the new line.
type Update struct {
	Type string   `json:"type"`
	Room string   `json:"roomName"`
	Chat []string `json:"chat"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// Outbound is the envelope for error messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Error *Error `json:"error,omitempty"`
}
