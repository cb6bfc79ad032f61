package wallet

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/messaging"
	"github.com/feral-file/ff-hotwallet/internal/providers/ethereum"
	"github.com/feral-file/ff-hotwallet/internal/registry"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
	"github.com/feral-file/ff-hotwallet/internal/vault"
)

// Wallet defines the administrative operations exposed by the API
//
//go:generate mockgen -source=wallet.go -destination=../mocks/wallet.go -package=mocks -mock_names=Wallet=MockWallet
type Wallet interface {
	// BlockHeight returns the node's current and highest known block
	BlockHeight(ctx context.Context) (domain.BlockHeight, error)

	// SetPassphrase unlocks the project's hot wallet for a coin
	SetPassphrase(ctx context.Context, projectID, coinID uint64, encryptedSecret string) error

	// CreateAddresses generates count deposit addresses protected by the project passphrase
	CreateAddresses(ctx context.Context, projectID, coinID uint64, count int) ([]string, error)

	// GetBalance returns the balance of address scaled by the coin's decimals
	GetBalance(ctx context.Context, coinID uint64, address, contract string) (string, error)

	// GetTransaction looks the hash up in the ledger first and then on chain
	GetTransaction(ctx context.Context, txHash string) (*TransactionInfo, error)

	// IsMine reports whether address belongs to the project
	IsMine(ctx context.Context, projectID uint64, address string) (bool, error)

	// RemoveAddress retires an active address
	RemoveAddress(ctx context.Context, projectID, coinID uint64, address string) error

	// SetAddress sets the hot, collect or fee address of a project coin
	SetAddress(ctx context.Context, projectID, coinID uint64, field domain.AddressField, address string) error

	// SetFee sets the non-empty fee overrides of a project coin
	SetFee(ctx context.Context, projectID, coinID uint64, input store.UpdateFeesInput) error

	// TurnStatus sets the non-nil switches of a project coin
	TurnStatus(ctx context.Context, projectID, coinID uint64, input store.UpdateFlagsInput) error

	// AddToken registers an ERC20 contract under a master coin
	AddToken(ctx context.Context, masterCoinID uint64, contract string) (*schema.Coin, error)

	// ProjectInfo returns the project and its coin settings
	ProjectInfo(ctx context.Context, projectID uint64) (*ProjectInfo, error)

	// UpdateCallback sets the deposit callback url of a project
	UpdateCallback(ctx context.Context, projectID uint64, callbackURL string) error
}

type wallet struct {
	store          store.Store
	gateway        ethereum.Gateway
	vault          vault.Vault
	registry       registry.Registry
	publisher      messaging.Publisher
	nativeCoinName string
}

// New creates the wallet operations. A nil publisher disables address events.
func New(st store.Store, gateway ethereum.Gateway, v vault.Vault, reg registry.Registry, publisher messaging.Publisher, nativeCoinName string) Wallet {
	return &wallet{
		store:          st,
		gateway:        gateway,
		vault:          v,
		registry:       reg,
		publisher:      publisher,
		nativeCoinName: nativeCoinName,
	}
}

// BlockHeight returns the node's current and highest known block
func (w *wallet) BlockHeight(ctx context.Context) (domain.BlockHeight, error) {
	height, err := w.gateway.GetBlockHeight(ctx)
	if err != nil {
		return domain.BlockHeight{}, fmt.Errorf("failed to get block height: %w", err)
	}
	return height, nil
}

// SetPassphrase unlocks the project's hot wallet for a coin
func (w *wallet) SetPassphrase(ctx context.Context, projectID, coinID uint64, encryptedSecret string) error {
	return w.vault.Unlock(ctx, projectID, coinID, encryptedSecret)
}

// CreateAddresses generates, persists, indexes and announces new deposit addresses
func (w *wallet) CreateAddresses(ctx context.Context, projectID, coinID uint64, count int) ([]string, error) {
	if count < 1 || count > domain.MAX_NEW_ADDRESSES {
		return nil, fmt.Errorf("%w: %d", domain.ErrAddressCount, count)
	}

	passphrase, err := w.vault.Get(projectID, coinID)
	if err != nil {
		return nil, err
	}

	addresses, err := w.gateway.NewAddress(ctx, passphrase, count)
	if err != nil {
		return nil, fmt.Errorf("failed to create accounts: %w", err)
	}
	addresses = domain.NormalizeAddresses(addresses)

	rows := make([]schema.Address, 0, len(addresses))
	for _, address := range addresses {
		rows = append(rows, schema.Address{
			ProjectID:   projectID,
			CoinID:      coinID,
			Address:     address,
			AddressType: domain.AddressTypeDeposit,
			Status:      domain.AddressStatusActive,
		})
	}
	if err := w.store.CreateAddresses(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to save addresses: %w", err)
	}

	for _, address := range addresses {
		w.registry.AddAddress(registry.AddressEntry{
			Address:   address,
			ProjectID: projectID,
			CoinID:    coinID,
			Type:      domain.AddressTypeDeposit,
		})
		w.publish(ctx, &messaging.AddressEvent{
			Type:        messaging.AddressEventCreated,
			ProjectID:   projectID,
			CoinID:      coinID,
			Address:     address,
			AddressType: domain.AddressTypeDeposit,
		})
	}

	logger.InfoCtx(ctx, "Created deposit addresses",
		zap.Uint64("projectID", projectID),
		zap.Uint64("coinID", coinID),
		zap.Int("count", len(addresses)))

	return addresses, nil
}

// GetBalance returns the balance of address scaled by the coin's decimals.
// A contract selects the token registered under coinID.
func (w *wallet) GetBalance(ctx context.Context, coinID uint64, address, contract string) (string, error) {
	if !domain.IsValidAddress(address) {
		return "", fmt.Errorf("%w: %s", domain.ErrAddressInvalid, address)
	}
	contract = domain.NormalizeAddress(contract)

	var coin *schema.Coin
	var err error
	if contract != "" {
		coin, err = w.store.GetCoinByContract(ctx, contract)
		if coin != nil && coin.MasterID != coinID {
			coin = nil
		}
	} else {
		coin, err = w.store.GetCoin(ctx, coinID, "")
	}
	if err != nil {
		return "", err
	}
	if coin == nil {
		return "", domain.ErrCoinMissing
	}

	balance, err := w.gateway.GetBalance(ctx, domain.NormalizeAddress(address), contract)
	if err != nil {
		return "", fmt.Errorf("failed to get balance: %w", err)
	}

	return domain.FormatBaseUnits(balance, coin.Decimal), nil
}

// GetTransaction looks the hash up in the ledger first and then on chain
func (w *wallet) GetTransaction(ctx context.Context, txHash string) (*TransactionInfo, error) {
	height, err := w.gateway.GetBlockHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block height: %w", err)
	}

	tx, err := w.store.GetTransactionByHash(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if tx != nil {
		return w.ledgerTransaction(ctx, tx, height.HighestHeight)
	}

	return w.chainTransaction(ctx, txHash, height.HighestHeight)
}

// ledgerTransaction renders a stored row; unconfirmed rows have no confirmations
func (w *wallet) ledgerTransaction(ctx context.Context, tx *schema.Transaction, highest uint64) (*TransactionInfo, error) {
	coin, err := w.store.GetCoin(ctx, tx.CoinID, "")
	if err != nil {
		return nil, err
	}
	if coin == nil {
		return nil, domain.ErrCoinMissing
	}

	amount, err := domain.ParseBaseUnits(tx.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount of %s: %w", tx.TxHash, err)
	}

	return &TransactionInfo{
		Sender:        tx.Sender,
		Receiver:      tx.Receiver,
		TxHash:        tx.TxHash,
		Value:         domain.FormatBaseUnits(amount, coin.Decimal),
		BlockHeight:   tx.Height,
		BlockTime:     tx.BlockTime,
		Contract:      tx.Contract,
		IsValid:       tx.Status == domain.TxStatusValid,
		ConfirmNumber: confirmations(highest, tx.Height),
	}, nil
}

// chainTransaction asks the node for a transaction the ledger does not hold
func (w *wallet) chainTransaction(ctx context.Context, txHash string, highest uint64) (*TransactionInfo, error) {
	tx, err := w.gateway.GetTransactionByHash(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if tx == nil {
		return nil, domain.ErrTxMissing
	}

	var coin *schema.Coin
	if tx.Contract != "" {
		coin, err = w.store.GetCoinByContract(ctx, tx.Contract)
	} else {
		coin, err = w.store.GetCoinByName(ctx, w.nativeCoinName)
	}
	if err != nil {
		return nil, err
	}
	if coin == nil {
		return nil, domain.ErrCoinMissing
	}

	info := &TransactionInfo{
		Sender:   tx.From,
		Receiver: tx.To,
		TxHash:   strings.ToLower(tx.Hash),
		Value:    domain.FormatBaseUnits(tx.Value, coin.Decimal),
		Contract: tx.Contract,
	}
	if tx.BlockNumber == nil {
		return info, nil
	}

	receipt, err := w.gateway.GetTransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	blocks, err := w.gateway.GetBlocksByNumber(ctx, []uint64{*tx.BlockNumber})
	if err != nil {
		return nil, fmt.Errorf("failed to get block %d: %w", *tx.BlockNumber, err)
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("failed to get block %d: not found", *tx.BlockNumber)
	}

	info.BlockHeight = int64(*tx.BlockNumber)
	info.BlockTime = int64(blocks[0].Timestamp)
	info.IsValid = receipt != nil && receipt.Status == 1
	info.ConfirmNumber = confirmations(highest, info.BlockHeight)
	return info, nil
}

// confirmations is highest - height for mined transactions, 0 otherwise
func confirmations(highest uint64, height int64) uint64 {
	if height <= 0 || uint64(height) > highest {
		return 0
	}
	return highest - uint64(height)
}

// IsMine reports whether address belongs to the project
func (w *wallet) IsMine(ctx context.Context, projectID uint64, address string) (bool, error) {
	row, err := w.store.GetAddress(ctx, projectID, address)
	if err != nil {
		return false, err
	}
	return row != nil, nil
}

// RemoveAddress retires an active address and announces it
func (w *wallet) RemoveAddress(ctx context.Context, projectID, coinID uint64, address string) error {
	address = domain.NormalizeAddress(address)

	removed, err := w.store.RemoveAddress(ctx, projectID, coinID, address)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: %s", domain.ErrAddressMissing, address)
	}

	w.registry.RemoveAddress(address)
	w.publish(ctx, &messaging.AddressEvent{
		Type:      messaging.AddressEventRemoved,
		ProjectID: projectID,
		CoinID:    coinID,
		Address:   address,
	})
	return nil
}

// SetAddress sets the hot, collect or fee address of a project coin
func (w *wallet) SetAddress(ctx context.Context, projectID, coinID uint64, field domain.AddressField, address string) error {
	if _, err := field.Column(); err != nil {
		return err
	}
	if !domain.IsValidAddress(address) {
		return fmt.Errorf("%w: %s", domain.ErrAddressInvalid, address)
	}
	return w.store.UpdateProjectCoinAddress(ctx, projectID, coinID, field, domain.NormalizeAddress(address))
}

// SetFee sets the non-empty fee overrides of a project coin
func (w *wallet) SetFee(ctx context.Context, projectID, coinID uint64, input store.UpdateFeesInput) error {
	for _, value := range []*string{input.Gas, input.GasPrice, input.Fee} {
		if value == nil || *value == "" {
			continue
		}
		parsed, err := domain.ParseBaseUnits(*value)
		if err != nil || parsed.Sign() < 0 {
			return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, *value)
		}
	}
	return w.store.UpdateProjectCoinFees(ctx, projectID, coinID, input)
}

// TurnStatus sets the non-nil switches of a project coin
func (w *wallet) TurnStatus(ctx context.Context, projectID, coinID uint64, input store.UpdateFlagsInput) error {
	return w.store.UpdateProjectCoinFlags(ctx, projectID, coinID, input)
}

// AddToken registers an ERC20 contract under a master coin that supports tokens
func (w *wallet) AddToken(ctx context.Context, masterCoinID uint64, contract string) (*schema.Coin, error) {
	if !domain.IsValidAddress(contract) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAddressInvalid, contract)
	}
	contract = domain.NormalizeAddress(contract)

	existing, err := w.store.GetCoinByContract(ctx, contract)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrTokenExists
	}

	master, err := w.store.GetCoin(ctx, masterCoinID, "")
	if err != nil {
		return nil, err
	}
	if master == nil {
		return nil, domain.ErrCoinMissing
	}
	if !master.IsMaster || !master.IsSupportToken {
		return nil, domain.ErrTokenUnsupported
	}

	info, err := w.gateway.GetContractInfo(ctx, contract)
	if err != nil {
		return nil, fmt.Errorf("failed to get contract info: %w", err)
	}
	if info.Name == "" || info.Symbol == "" {
		return nil, fmt.Errorf("%w: missing name or symbol", domain.ErrTokenInvalid)
	}

	supply := "0"
	if info.TotalSupply != nil {
		supply = info.TotalSupply.String()
	}
	coin := &schema.Coin{
		MasterID: master.ID,
		Name:     info.Name,
		Symbol:   info.Symbol,
		Decimal:  info.Decimals,
		Supply:   supply,
		Contract: &contract,
	}
	if err := w.store.CreateCoin(ctx, coin); err != nil {
		return nil, err
	}

	if err := w.registry.Load(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to reload registry after adding token", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Registered token",
		zap.Uint64("coinID", coin.ID),
		zap.String("symbol", coin.Symbol),
		zap.String("contract", contract))
	return coin, nil
}

// ProjectInfo returns the project and its coin settings
func (w *wallet) ProjectInfo(ctx context.Context, projectID uint64) (*ProjectInfo, error) {
	project, err := w.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectMissing
	}

	coins, err := w.store.ListCoins(ctx)
	if err != nil {
		return nil, err
	}

	info := &ProjectInfo{
		ProjectID:   project.ID,
		Name:        project.Name,
		CallbackURL: project.CallbackURL,
		AccessKey:   project.AccessKey,
		PublicKey:   project.HotPublicKey,
		Coins:       []ProjectCoinInfo{},
	}
	for _, coin := range coins {
		projectCoin, err := w.store.GetProjectCoin(ctx, projectID, coin.ID)
		if err != nil {
			return nil, err
		}
		if projectCoin == nil {
			continue
		}
		info.Coins = append(info.Coins, ProjectCoinInfo{
			CoinID:            coin.ID,
			CoinName:          coin.Name,
			HotAddress:        projectCoin.HotAddress,
			CollectionAddress: projectCoin.CollectAddress,
			RenderAddress:     projectCoin.FeeAddress,
			Fee:               projectCoin.Fee,
			IsDeposit:         projectCoin.IsDeposit,
			IsWithdraw:        projectCoin.IsWithdraw,
			IsCollect:         projectCoin.IsCollect,
		})
	}

	return info, nil
}

// UpdateCallback sets the deposit callback url of a project
func (w *wallet) UpdateCallback(ctx context.Context, projectID uint64, callbackURL string) error {
	parsed, err := url.ParseRequestURI(callbackURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: %s", domain.ErrCallbackInvalid, callbackURL)
	}

	project, err := w.store.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrProjectMissing
	}

	return w.store.UpdateProjectCallback(ctx, projectID, callbackURL)
}

// publish announces an address change. Failures are logged; scanners also reload periodically.
func (w *wallet) publish(ctx context.Context, event *messaging.AddressEvent) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishAddressEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish address event: %w", err),
			zap.String("type", string(event.Type)),
			zap.String("address", event.Address))
	}
}
