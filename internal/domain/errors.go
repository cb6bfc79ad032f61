package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigMissing is returned when the gateway configuration or a coin checkpoint is absent
	ErrConfigMissing = errors.New("config missing")

	// ErrCoinMissing is returned when a coin cannot be resolved by id or contract
	ErrCoinMissing = errors.New("coin missing")

	// ErrProjectCoinMissing is returned when a project has no settings row for a coin
	ErrProjectCoinMissing = errors.New("project coin missing")

	// ErrKeyMissing is returned when a project has no private key to decrypt its passphrase
	ErrKeyMissing = errors.New("private key missing")

	// ErrPassphraseMissing is returned when no passphrase is held for a project or coin
	ErrPassphraseMissing = errors.New("passphrase missing")

	// ErrProjectPassphraseMissing is returned when no passphrase is held for the project at all
	ErrProjectPassphraseMissing = fmt.Errorf("project %w", ErrPassphraseMissing)

	// ErrCoinPassphraseMissing is returned when the project is unlocked but not for the coin
	ErrCoinPassphraseMissing = fmt.Errorf("coin %w", ErrPassphraseMissing)

	// ErrPassphraseInvalid is returned when the encrypted passphrase cannot be decrypted
	ErrPassphraseInvalid = errors.New("passphrase invalid")

	// ErrWalletUnlockFailed is returned when the node rejects the decrypted passphrase
	ErrWalletUnlockFailed = errors.New("wallet unlock failed")

	// ErrFeeArgs is returned when gas or gas price cannot be resolved
	ErrFeeArgs = errors.New("fee arguments unresolved")

	// ErrTxSend is returned when the node refuses to broadcast a transaction
	ErrTxSend = errors.New("transaction send failed")

	// ErrSync is returned when a scan batch fails and is rolled back
	ErrSync = errors.New("sync failed")

	// ErrNotifyFailure is returned when a deposit callback is not acknowledged
	ErrNotifyFailure = errors.New("notify failure")

	// ErrInvalidAmount is returned when an amount is malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrWithdrawDisabled is returned when withdrawals are turned off for a project coin
	ErrWithdrawDisabled = errors.New("withdraw disabled")

	// ErrAddressMissing is returned when an address is not registered to the project
	ErrAddressMissing = errors.New("address missing")

	// ErrAddressFieldInvalid is returned for an unknown project coin address field
	ErrAddressFieldInvalid = errors.New("address field invalid")

	// ErrAddressInvalid is returned for a value that is not a 20-byte hex address
	ErrAddressInvalid = errors.New("address invalid")

	// ErrAddressCount is returned when address generation asks for too few or too many addresses
	ErrAddressCount = errors.New("address count out of range")

	// ErrProjectMissing is returned when a project id does not exist
	ErrProjectMissing = errors.New("project missing")

	// ErrCallbackInvalid is returned for a callback url that is not absolute http(s)
	ErrCallbackInvalid = errors.New("callback url invalid")

	// ErrTxMissing is returned when neither the ledger nor the node knows a transaction
	ErrTxMissing = errors.New("transaction missing")

	// ErrTokenExists is returned when registering a contract that is already known
	ErrTokenExists = errors.New("token already exists")

	// ErrTokenUnsupported is returned when the master coin does not accept tokens
	ErrTokenUnsupported = errors.New("token unsupported")

	// ErrTokenInvalid is returned when a contract does not look like a token
	ErrTokenInvalid = errors.New("token invalid")
)

// TxSendError carries the node's rejection message verbatim
type TxSendError struct {
	Message string
}

func (e *TxSendError) Error() string {
	if e.Message == "" {
		return ErrTxSend.Error()
	}
	return fmt.Sprintf("%s: %s", ErrTxSend.Error(), e.Message)
}

// Is reports whether the target is ErrTxSend
func (e *TxSendError) Is(target error) bool {
	return target == ErrTxSend
}
