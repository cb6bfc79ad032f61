package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Block is a block with its full transactions
type Block struct {
	Number       uint64
	Hash         string
	Timestamp    uint64
	Transactions []Transaction
}

// Transaction is a chain transaction. For ERC20 transfers To and Value are decoded from the
// call data and Contract holds the token address; Contract is empty for native transfers.
type Transaction struct {
	Hash        string
	From        string
	To          string
	Value       *big.Int
	Gas         uint64
	GasPrice    *big.Int
	Contract    string
	BlockNumber *uint64
}

// Receipt is the execution outcome of a mined transaction
type Receipt struct {
	TxHash      string
	BlockNumber uint64
	GasUsed     uint64
	// Status is 1 on success and 0 on revert
	Status uint64
}

// SendRequest describes a transfer signed by the node with the account passphrase.
// Contract selects an ERC20 transfer of Value tokens; empty sends the native coin.
type SendRequest struct {
	From       string
	To         string
	Value      *big.Int
	Passphrase string
	Gas        *big.Int
	GasPrice   *big.Int
	Contract   string
}

// ContractInfo is the ERC20 metadata of a token contract
type ContractInfo struct {
	Name        string
	Symbol      string
	Decimals    int32
	TotalSupply *big.Int
}

type rpcTransaction struct {
	Hash        string          `json:"hash"`
	From        string          `json:"from"`
	To          *string         `json:"to"`
	Value       *hexutil.Big    `json:"value"`
	Gas         hexutil.Uint64  `json:"gas"`
	GasPrice    *hexutil.Big    `json:"gasPrice"`
	Input       hexutil.Bytes   `json:"input"`
	BlockNumber *hexutil.Uint64 `json:"blockNumber"`
}

type rpcBlock struct {
	Number       hexutil.Uint64   `json:"number"`
	Hash         string           `json:"hash"`
	Timestamp    hexutil.Uint64   `json:"timestamp"`
	Transactions []rpcTransaction `json:"transactions"`
}

type rpcReceipt struct {
	TransactionHash string         `json:"transactionHash"`
	BlockNumber     hexutil.Uint64 `json:"blockNumber"`
	GasUsed         hexutil.Uint64 `json:"gasUsed"`
	Status          hexutil.Uint64 `json:"status"`
}

type rpcSyncProgress struct {
	CurrentBlock hexutil.Uint64 `json:"currentBlock"`
	HighestBlock hexutil.Uint64 `json:"highestBlock"`
}

type rpcCallArgs struct {
	From     string        `json:"from,omitempty"`
	To       string        `json:"to"`
	Gas      *hexutil.Big  `json:"gas,omitempty"`
	GasPrice *hexutil.Big  `json:"gasPrice,omitempty"`
	Value    *hexutil.Big  `json:"value,omitempty"`
	Data     hexutil.Bytes `json:"data,omitempty"`
}
