package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
)

// Signer builds canonical, signed callback requests
type Signer struct {
	json adapter.JSON
	jcs  adapter.JCS
}

// NewSigner creates a signer
func NewSigner(json adapter.JSON, jcs adapter.JCS) *Signer {
	return &Signer{json: json, jcs: jcs}
}

// Sign serialises payload as canonical JSON (RFC 8785) and signs "{timestamp}.{eventID}.{body}"
// with HMAC-SHA256 keyed by secret
func (s *Signer) Sign(secret, eventID string, timestamp int64, payload DepositPayload) (*SignedRequest, error) {
	raw, err := s.json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	body, err := s.jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize payload: %w", err)
	}

	return &SignedRequest{
		EventID:   eventID,
		Timestamp: timestamp,
		Body:      body,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			HeaderSignature: ComputeSignature(secret, timestamp, eventID, body),
			HeaderEventID:   eventID,
			HeaderTimestamp: strconv.FormatInt(timestamp, 10),
			HeaderEventType: EventTypeDeposit,
			HeaderUserAgent: userAgent,
		},
	}, nil
}

// ComputeSignature returns "sha256=<hex hmac>" over "{timestamp}.{eventID}.{body}"
func ComputeSignature(secret string, timestamp int64, eventID string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(fmt.Sprintf("%d.%s.", timestamp, eventID)))
	h.Write(body)
	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}

// VerifySignature checks a signature header in constant time
func VerifySignature(secret string, timestamp int64, eventID string, body []byte, signature string) bool {
	expected := ComputeSignature(secret, timestamp, eventID, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}
