package rest

import "encoding/json"

// DefaultNewAddressCount is used when newAddress omits count
const DefaultNewAddressCount = 10

type newAddressRequest struct {
	CoinID uint64 `json:"coinId" binding:"required"`
	Count  *int   `json:"count"`
}

type getBalanceRequest struct {
	CoinID   uint64 `json:"coinId" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Contract string `json:"contract"`
}

type getTransactionRequest struct {
	TxHash string `json:"txHash" binding:"required"`
}

type isMineRequest struct {
	Address string `json:"address" binding:"required"`
}

type sendTransactionRequest struct {
	ActionID string      `json:"actionId" binding:"required"`
	Sender   string      `json:"sender" binding:"required"`
	Receiver string      `json:"receiver" binding:"required"`
	Amount   json.Number `json:"amount" binding:"required"`
	CoinID   uint64      `json:"coinId" binding:"required"`
	Contract string      `json:"contract"`
}

type setPassphraseRequest struct {
	CoinID uint64 `json:"coinId" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

type addressRequest struct {
	CoinID  uint64 `json:"coinId" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type setFeeRequest struct {
	CoinID   uint64  `json:"coinId" binding:"required"`
	Gas      *string `json:"gas"`
	GasPrice *string `json:"gasPrice"`
	Fee      *string `json:"fee"`
}

type turnStatusRequest struct {
	CoinID     uint64 `json:"coinId" binding:"required"`
	IsDeposit  *bool  `json:"isDeposit"`
	IsWithdraw *bool  `json:"isWithdraw"`
	IsCollect  *bool  `json:"isCollect"`
}

type addTokenRequest struct {
	CoinID   uint64 `json:"coinId" binding:"required"`
	Contract string `json:"contract" binding:"required"`
}

type updateProjectRequest struct {
	CallbackURL string `json:"callbackUrl" binding:"required"`
}

type sendTransactionResponse struct {
	TxHash string `json:"txHash"`
}
