package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
)

const (
	// unlockDuration keeps personal_unlockAccount from leaving the account open
	unlockDuration = uint64(1)

	// estimateHeadroomPercent is added on top of eth_estimateGas for token transfers
	estimateHeadroomPercent = 20
)

// Gateway is the node facade used by the wallet engines
//
//go:generate mockgen -source=client.go -destination=../../mocks/ethereum_gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// GetBlockHeight returns the node's current and highest known block
	GetBlockHeight(ctx context.Context) (domain.BlockHeight, error)

	// GetBlocksByNumber fetches full blocks in one batched request, in the order of heights
	GetBlocksByNumber(ctx context.Context, heights []uint64) ([]Block, error)

	// GetTransactionByHash returns nil when the node does not know the transaction
	GetTransactionByHash(ctx context.Context, txHash string) (*Transaction, error)

	// GetTransactionReceipt returns nil when the transaction is not mined
	GetTransactionReceipt(ctx context.Context, txHash string) (*Receipt, error)

	// GetBalance returns the native balance, or the token balance when contract is set
	GetBalance(ctx context.Context, address, contract string) (*big.Int, error)

	// GetBalances returns balances in the order of addresses with one batched request
	GetBalances(ctx context.Context, addresses []string, contract string) ([]*big.Int, error)

	// SendTransaction broadcasts a transfer signed by the node and returns its hash.
	// Node rejections are returned as *domain.TxSendError.
	SendTransaction(ctx context.Context, req SendRequest) (string, error)

	// GasPrice returns the node's suggested gas price
	GasPrice(ctx context.Context) (*big.Int, error)

	// GetSmartFee returns the gas limit of a transfer; contract selects a token transfer
	GetSmartFee(ctx context.Context, contract string) (*big.Int, error)

	// OpenWallet checks that passphrase unlocks address
	OpenWallet(ctx context.Context, passphrase, address string) (bool, error)

	// NewAddress creates count accounts protected by passphrase
	NewAddress(ctx context.Context, passphrase string, count int) ([]string, error)

	// GetContractInfo reads the ERC20 metadata of contract
	GetContractInfo(ctx context.Context, contract string) (*ContractInfo, error)

	// Close closes the connection
	Close()
}

type gateway struct {
	client     adapter.RPCClient
	maxRetries uint64
}

// NewGateway creates a gateway over a JSON-RPC client. Reads are retried up to maxRetries
// times on transport errors; broadcasts are never retried.
func NewGateway(client adapter.RPCClient, maxRetries uint64) Gateway {
	return &gateway{client: client, maxRetries: maxRetries}
}

// Close closes the connection
func (g *gateway) Close() {
	g.client.Close()
}

// read runs op with exponential backoff; node errors are permanent
func (g *gateway) read(ctx context.Context, method string, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}

		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) || ctx.Err() != nil {
			return backoff.Permanent(err)
		}

		logger.WarnCtx(ctx, "RPC read failed, retrying",
			zap.String("method", method),
			zap.Int("attempt", attempt),
			zap.Error(err))
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, g.maxRetries), ctx))
}

func (g *gateway) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	return g.read(ctx, method, func() error {
		return g.client.CallContext(ctx, result, method, args...)
	})
}

// batch sends elems in one request and returns the first element error
func (g *gateway) batch(ctx context.Context, method string, elems []rpc.BatchElem) error {
	if len(elems) == 0 {
		return nil
	}

	err := g.read(ctx, method, func() error {
		return g.client.BatchCallContext(ctx, elems)
	})
	if err != nil {
		return err
	}

	for i, elem := range elems {
		if elem.Error != nil {
			return fmt.Errorf("batch element %d: %w", i, elem.Error)
		}
	}
	return nil
}

// GetBlockHeight returns the node's current and highest known block.
// While the node is syncing both heights come from eth_syncing.
func (g *gateway) GetBlockHeight(ctx context.Context) (domain.BlockHeight, error) {
	var number hexutil.Uint64
	var syncing json.RawMessage
	elems := []rpc.BatchElem{
		{Method: "eth_blockNumber", Result: &number},
		{Method: "eth_syncing", Result: &syncing},
	}
	if err := g.batch(ctx, "eth_blockNumber", elems); err != nil {
		return domain.BlockHeight{}, fmt.Errorf("failed to get block height: %w", err)
	}

	height := domain.BlockHeight{CurrentHeight: uint64(number), HighestHeight: uint64(number)}

	var progress rpcSyncProgress
	if len(syncing) > 0 && syncing[0] == '{' {
		if err := json.Unmarshal(syncing, &progress); err != nil {
			return domain.BlockHeight{}, fmt.Errorf("failed to decode sync progress: %w", err)
		}
		height.CurrentHeight = uint64(progress.CurrentBlock)
		height.HighestHeight = uint64(progress.HighestBlock)
	}

	return height, nil
}

// GetBlocksByNumber fetches full blocks in one batched request
func (g *gateway) GetBlocksByNumber(ctx context.Context, heights []uint64) ([]Block, error) {
	results := make([]*rpcBlock, len(heights))
	elems := make([]rpc.BatchElem, len(heights))
	for i, h := range heights {
		elems[i] = rpc.BatchElem{
			Method: "eth_getBlockByNumber",
			Args:   []interface{}{hexutil.EncodeUint64(h), true},
			Result: &results[i],
		}
	}

	if err := g.batch(ctx, "eth_getBlockByNumber", elems); err != nil {
		return nil, fmt.Errorf("failed to get blocks: %w", err)
	}

	blocks := make([]Block, 0, len(heights))
	for i, raw := range results {
		if raw == nil {
			return nil, fmt.Errorf("block %d not found", heights[i])
		}
		block := Block{
			Number:       uint64(raw.Number),
			Hash:         strings.ToLower(raw.Hash),
			Timestamp:    uint64(raw.Timestamp),
			Transactions: make([]Transaction, 0, len(raw.Transactions)),
		}
		for _, tx := range raw.Transactions {
			block.Transactions = append(block.Transactions, toTransaction(tx))
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

// toTransaction normalises addresses and decodes ERC20 transfers
func toTransaction(raw rpcTransaction) Transaction {
	tx := Transaction{
		Hash:     strings.ToLower(raw.Hash),
		From:     domain.NormalizeAddress(raw.From),
		Value:    big.NewInt(0),
		Gas:      uint64(raw.Gas),
		GasPrice: big.NewInt(0),
	}
	if raw.To != nil {
		tx.To = domain.NormalizeAddress(*raw.To)
	}
	if raw.Value != nil {
		tx.Value = raw.Value.ToInt()
	}
	if raw.GasPrice != nil {
		tx.GasPrice = raw.GasPrice.ToInt()
	}
	if raw.BlockNumber != nil {
		n := uint64(*raw.BlockNumber)
		tx.BlockNumber = &n
	}

	if receiver, value, ok := decodeTransfer(raw.Input); ok && tx.To != "" {
		tx.Contract = tx.To
		tx.To = receiver
		tx.Value = value
	}

	return tx
}

// GetTransactionByHash returns nil when the node does not know the transaction
func (g *gateway) GetTransactionByHash(ctx context.Context, txHash string) (*Transaction, error) {
	var raw *rpcTransaction
	if err := g.call(ctx, &raw, "eth_getTransactionByHash", txHash); err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	tx := toTransaction(*raw)
	return &tx, nil
}

// GetTransactionReceipt returns nil when the transaction is not mined
func (g *gateway) GetTransactionReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	var raw *rpcReceipt
	if err := g.call(ctx, &raw, "eth_getTransactionReceipt", txHash); err != nil {
		return nil, fmt.Errorf("failed to get transaction receipt: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	return &Receipt{
		TxHash:      strings.ToLower(raw.TransactionHash),
		BlockNumber: uint64(raw.BlockNumber),
		GasUsed:     uint64(raw.GasUsed),
		Status:      uint64(raw.Status),
	}, nil
}

// GetBalance returns the native balance, or the token balance when contract is set
func (g *gateway) GetBalance(ctx context.Context, address, contract string) (*big.Int, error) {
	balances, err := g.GetBalances(ctx, []string{address}, contract)
	if err != nil {
		return nil, err
	}
	return balances[0], nil
}

// GetBalances returns balances in the order of addresses
func (g *gateway) GetBalances(ctx context.Context, addresses []string, contract string) ([]*big.Int, error) {
	if contract == "" {
		results := make([]hexutil.Big, len(addresses))
		elems := make([]rpc.BatchElem, len(addresses))
		for i, address := range addresses {
			elems[i] = rpc.BatchElem{
				Method: "eth_getBalance",
				Args:   []interface{}{address, "latest"},
				Result: &results[i],
			}
		}
		if err := g.batch(ctx, "eth_getBalance", elems); err != nil {
			return nil, fmt.Errorf("failed to get balances: %w", err)
		}

		balances := make([]*big.Int, len(results))
		for i := range results {
			balances[i] = results[i].ToInt()
		}
		return balances, nil
	}

	results := make([]hexutil.Bytes, len(addresses))
	elems := make([]rpc.BatchElem, len(addresses))
	for i, address := range addresses {
		data, err := packBalanceOf(address)
		if err != nil {
			return nil, fmt.Errorf("failed to pack balanceOf: %w", err)
		}
		elems[i] = rpc.BatchElem{
			Method: "eth_call",
			Args:   []interface{}{rpcCallArgs{To: contract, Data: data}, "latest"},
			Result: &results[i],
		}
	}
	if err := g.batch(ctx, "eth_call", elems); err != nil {
		return nil, fmt.Errorf("failed to get token balances: %w", err)
	}

	balances := make([]*big.Int, len(results))
	for i, data := range results {
		value, err := unpackUint256("balanceOf", data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode balance of %s: %w", addresses[i], err)
		}
		balances[i] = value
	}
	return balances, nil
}

// SendTransaction broadcasts with personal_sendTransaction. The request is detached from
// ctx cancellation once started.
func (g *gateway) SendTransaction(ctx context.Context, req SendRequest) (string, error) {
	args := rpcCallArgs{
		From:     req.From,
		To:       req.To,
		Gas:      (*hexutil.Big)(req.Gas),
		GasPrice: (*hexutil.Big)(req.GasPrice),
		Value:    (*hexutil.Big)(req.Value),
	}

	if req.Contract != "" {
		data, err := packTransfer(req.To, req.Value)
		if err != nil {
			return "", fmt.Errorf("failed to pack transfer: %w", err)
		}
		args.To = req.Contract
		args.Value = (*hexutil.Big)(big.NewInt(0))
		args.Data = data
	}

	var txHash string
	err := g.client.CallContext(context.WithoutCancel(ctx), &txHash, "personal_sendTransaction", args, req.Passphrase)
	if err != nil {
		return "", &domain.TxSendError{Message: err.Error()}
	}
	if txHash == "" {
		return "", &domain.TxSendError{}
	}

	return strings.ToLower(txHash), nil
}

// GasPrice returns the node's suggested gas price
func (g *gateway) GasPrice(ctx context.Context) (*big.Int, error) {
	var price hexutil.Big
	if err := g.call(ctx, &price, "eth_gasPrice"); err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}
	return price.ToInt(), nil
}

// GetSmartFee returns the intrinsic transfer gas for the native coin, or an estimate of a
// zero-value token transfer with headroom for contracts.
func (g *gateway) GetSmartFee(ctx context.Context, contract string) (*big.Int, error) {
	if contract == "" {
		return new(big.Int).SetUint64(params.TxGas), nil
	}

	data, err := packTransfer(contract, big.NewInt(0))
	if err != nil {
		return nil, fmt.Errorf("failed to pack transfer: %w", err)
	}

	var estimate hexutil.Uint64
	args := rpcCallArgs{From: contract, To: contract, Data: data}
	if err := g.call(ctx, &estimate, "eth_estimateGas", args); err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	gas := new(big.Int).SetUint64(uint64(estimate))
	headroom := new(big.Int).Div(new(big.Int).Mul(gas, big.NewInt(estimateHeadroomPercent)), big.NewInt(100))
	return gas.Add(gas, headroom), nil
}

// OpenWallet checks that passphrase unlocks address
func (g *gateway) OpenWallet(ctx context.Context, passphrase, address string) (bool, error) {
	var unlocked bool
	err := g.client.CallContext(ctx, &unlocked, "personal_unlockAccount", address, passphrase, unlockDuration)
	if err != nil {
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			return false, nil
		}
		return false, fmt.Errorf("failed to unlock account: %w", err)
	}
	return unlocked, nil
}

// NewAddress creates count accounts protected by passphrase
func (g *gateway) NewAddress(ctx context.Context, passphrase string, count int) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}

	results := make([]string, count)
	elems := make([]rpc.BatchElem, count)
	for i := range elems {
		elems[i] = rpc.BatchElem{
			Method: "personal_newAccount",
			Args:   []interface{}{passphrase},
			Result: &results[i],
		}
	}

	if err := g.client.BatchCallContext(ctx, elems); err != nil {
		return nil, fmt.Errorf("failed to create accounts: %w", err)
	}

	addresses := make([]string, 0, count)
	for i, elem := range elems {
		if elem.Error != nil {
			return nil, fmt.Errorf("failed to create account %d: %w", i, elem.Error)
		}
		addresses = append(addresses, domain.NormalizeAddress(results[i]))
	}
	return addresses, nil
}

// GetContractInfo reads name, symbol, decimals and totalSupply in one batched request
func (g *gateway) GetContractInfo(ctx context.Context, contract string) (*ContractInfo, error) {
	methods := []string{"name", "symbol", "decimals", "totalSupply"}
	results := make([]hexutil.Bytes, len(methods))
	elems := make([]rpc.BatchElem, len(methods))
	for i, method := range methods {
		data, err := erc20ABI.Pack(method)
		if err != nil {
			return nil, fmt.Errorf("failed to pack %s: %w", method, err)
		}
		elems[i] = rpc.BatchElem{
			Method: "eth_call",
			Args:   []interface{}{rpcCallArgs{To: contract, Data: data}, "latest"},
			Result: &results[i],
		}
	}

	if err := g.batch(ctx, "eth_call", elems); err != nil {
		return nil, fmt.Errorf("failed to get contract info: %w", err)
	}

	for i, data := range results {
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: %s returned no data", domain.ErrTokenInvalid, methods[i])
		}
	}

	info := &ContractInfo{}

	name, err := erc20ABI.Unpack("name", results[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode name: %v", domain.ErrTokenInvalid, err)
	}
	info.Name, _ = name[0].(string)

	symbol, err := erc20ABI.Unpack("symbol", results[1])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode symbol: %v", domain.ErrTokenInvalid, err)
	}
	info.Symbol, _ = symbol[0].(string)

	decimals, err := erc20ABI.Unpack("decimals", results[2])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode decimals: %v", domain.ErrTokenInvalid, err)
	}
	d, _ := decimals[0].(uint8)
	info.Decimals = int32(d)

	info.TotalSupply, err = unpackUint256("totalSupply", results[3])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode totalSupply: %v", domain.ErrTokenInvalid, err)
	}

	return info, nil
}
