package protocol

// Client frame actions on the websocket endpoint
const (
	ActionConnect = "connect"
	ActionPing    = "ping"
	ActionChat    = "chat"
)

// ClientFrame is the single inbound frame shape. Fields beyond Action are
// meaningful per action: Headers on connect, ReceiverID/Content on chat,
// Timestamp on ping.
type ClientFrame struct {
	Action     string            `json:"action"`
	Headers    map[string]string `json:"headers,omitempty"`
	ReceiverID uint              `json:"receiverId,omitempty"`
	Content    string            `json:"content,omitempty"`
	Timestamp  int64             `json:"timestamp,omitempty"`
}
