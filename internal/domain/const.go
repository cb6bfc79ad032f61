package domain

const (
	// Coin constants
	DRIVER_ETHEREUM   = "ETHEREUM"
	NATIVE_COIN_NAME  = "Ethereum"
	MAX_NEW_ADDRESSES = 100

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
	ERC20_TRANSFER_METHOD = "a9059cbb"

	// Ledger constants
	UNCONFIRMED_HEIGHT = -1
	UNCONFIRMED_BLOCK  = -1
)
