package messaging

import (
	"github.com/feral-file/ff-hotwallet/internal/domain"
)

// AddressEventType is the lifecycle change carried by an address event
type AddressEventType string

const (
	AddressEventCreated AddressEventType = "created"
	AddressEventRemoved AddressEventType = "removed"
)

// SubjectPrefix is the subject namespace of address events, e.g. addresses.created
const SubjectPrefix = "addresses"

// AddressEvent announces a deposit address change so scanner registries stay current
type AddressEvent struct {
	Type        AddressEventType   `json:"type"`
	ProjectID   uint64             `json:"projectId"`
	CoinID      uint64             `json:"coinId"`
	Address     string             `json:"address"`
	AddressType domain.AddressType `json:"addressType"`
}

// Subject returns the subject the event is published on
func (e *AddressEvent) Subject() string {
	return SubjectPrefix + "." + string(e.Type)
}
