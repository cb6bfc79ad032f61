package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// AddressType represents the purpose of a project address
type AddressType int

const (
	AddressTypeDeposit  AddressType = 0
	AddressTypeWithdraw AddressType = 1
)

// AddressStatus represents the lifecycle of a project address.
// Active addresses can only move to removed.
type AddressStatus int

const (
	AddressStatusInvalid AddressStatus = 0
	AddressStatusActive  AddressStatus = 1
	AddressStatusRemoved AddressStatus = 2
)

// TxStatus represents the on-chain outcome of a transaction
type TxStatus int

const (
	TxStatusInvalid TxStatus = 0
	TxStatusValid   TxStatus = 1
	TxStatusUnknown TxStatus = 2
)

// TxType represents how a ledger transaction came to exist
type TxType int

const (
	TxTypeDeposit    TxType = 1
	TxTypeCollection TxType = 2
	TxTypeRender     TxType = 3
)

// String returns a short label used in logs and metrics
func (t TxType) String() string {
	switch t {
	case TxTypeDeposit:
		return "deposit"
	case TxTypeCollection:
		return "collection"
	case TxTypeRender:
		return "render"
	default:
		return "unknown"
	}
}

// SendStatus represents the callback state of a ledger transaction.
// It only moves forward from NotPush.
type SendStatus int

const (
	SendStatusNotPush  SendStatus = 0
	SendStatusPushed   SendStatus = 1
	SendStatusNeedless SendStatus = 2
)

// AddressField selects one of the configurable addresses of a project coin
type AddressField string

const (
	AddressFieldHot     AddressField = "hot"
	AddressFieldCollect AddressField = "collect"
	AddressFieldFee     AddressField = "fee"
)

// Column returns the project_coins column backing the field
func (f AddressField) Column() (string, error) {
	switch f {
	case AddressFieldHot:
		return "hot_address", nil
	case AddressFieldCollect:
		return "collect_address", nil
	case AddressFieldFee:
		return "fee_address", nil
	default:
		return "", ErrAddressFieldInvalid
	}
}

// BlockHeight is the node's view of the chain head
type BlockHeight struct {
	CurrentHeight uint64 `json:"currentHeight"`
	HighestHeight uint64 `json:"highestHeight"`
}

// IsValidAddress checks if the value is a 20-byte hex address
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address) && strings.HasPrefix(strings.ToLower(address), "0x")
}

// NormalizeAddress normalizes an address to the lowercase form returned by the node
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	return strings.ToLower(address)
}

// NormalizeAddresses normalizes a list of addresses in place
func NormalizeAddresses(addresses []string) []string {
	for i, address := range addresses {
		addresses[i] = NormalizeAddress(address)
	}
	return addresses
}
