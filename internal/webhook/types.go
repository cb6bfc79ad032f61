package webhook

// Header names carried by every deposit callback
const (
	HeaderSignature = "X-Hotwallet-Signature"
	HeaderEventID   = "X-Hotwallet-Event-ID"
	HeaderTimestamp = "X-Hotwallet-Timestamp"
	HeaderEventType = "X-Hotwallet-Event-Type"
	HeaderUserAgent = "User-Agent"

	// EventTypeDeposit is the only event type delivered today
	EventTypeDeposit = "deposit"

	userAgent = "ff-hotwallet-notifier/1.0"
)

// DepositPayload is the callback body announcing a deposit
type DepositPayload struct {
	// TxHash is the deposit transaction hash
	TxHash string `json:"txHash"`
	// BlockHeight is the block the deposit was mined in
	BlockHeight int64 `json:"blockHeight"`
	// Amount is in base units
	Amount string `json:"amount"`
	// Address is the receiving deposit address
	Address string `json:"address"`
	// OrderID is a fresh uuid per attempt, hex without dashes
	OrderID string `json:"orderId"`
}

// SignedRequest is a canonical body ready to post with its headers
type SignedRequest struct {
	EventID   string
	Timestamp int64
	Body      []byte
	Headers   map[string]string
}

// DeliveryResult represents the result of a callback delivery attempt
type DeliveryResult struct {
	// Success is true only for HTTP 200
	Success bool
	// StatusCode is the HTTP status code, 0 when no response was received
	StatusCode int
	// Body is the response body (limited to 4KB)
	Body string
	// Error contains error details if delivery failed
	Error string
}
