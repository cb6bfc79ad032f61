package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/api/middleware"
	"github.com/feral-file/ff-hotwallet/internal/api/response"
	"github.com/feral-file/ff-hotwallet/internal/dispatcher"
	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/wallet"
)

// Handler defines the interface for REST API handlers.
// Every route except HealthCheck is POST /api/v1/<name> with a signed JSON body.
type Handler interface {
	// GetBlockHeight returns the node's current and highest block
	GetBlockHeight(c *gin.Context)

	// NewAddress creates deposit addresses for the calling project
	NewAddress(c *gin.Context)

	// GetBalance returns the scaled balance of an address
	GetBalance(c *gin.Context)

	// GetTransaction returns a transaction from the ledger or the chain
	GetTransaction(c *gin.Context)

	// IsMine reports whether an address belongs to the calling project
	IsMine(c *gin.Context)

	// SendTransaction broadcasts a transfer at most once per actionId
	SendTransaction(c *gin.Context)

	// SetPassphrase unlocks the project's hot wallet for a coin
	SetPassphrase(c *gin.Context)

	// RemoveAddress retires a deposit address
	RemoveAddress(c *gin.Context)

	// SetHotAddress sets the withdrawal address of a project coin
	SetHotAddress(c *gin.Context)

	// SetCollectAddress sets the sweep destination of a project coin
	SetCollectAddress(c *gin.Context)

	// SetFeeAddress sets the address funding token top-ups
	SetFeeAddress(c *gin.Context)

	// SetFee sets gas, gas price and fee overrides
	SetFee(c *gin.Context)

	// TurnStatus toggles deposit, withdraw and collect
	TurnStatus(c *gin.Context)

	// AddToken registers an ERC20 contract
	AddToken(c *gin.Context)

	// GetProjectInfo returns the calling project's settings
	GetProjectInfo(c *gin.Context)

	// UpdateProject sets the calling project's callback url
	UpdateProject(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /healthz
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	wallet     wallet.Wallet
	dispatcher dispatcher.Dispatcher
}

// NewHandler creates a new REST API handler
func NewHandler(w wallet.Wallet, d dispatcher.Dispatcher) Handler {
	return &handler{
		wallet:     w,
		dispatcher: d,
	}
}

// GetBlockHeight returns the node's current and highest block
func (h *handler) GetBlockHeight(c *gin.Context) {
	height, err := h.wallet.BlockHeight(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, height)
}

// NewAddress creates deposit addresses for the calling project
func (h *handler) NewAddress(c *gin.Context) {
	var req newAddressRequest
	projectID, ok := bind(c, &req)
	if !ok {
		return
	}

	count := DefaultNewAddressCount
	if req.Count != nil {
		count = *req.Count
	}

	addresses, err := h.wallet.CreateAddresses(c.Request.Context(), projectID, req.CoinID, count)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, addresses)
}

// GetBalance returns the scaled balance of an address
func (h *handler) GetBalance(c *gin.Context) {
	var req getBalanceRequest
	if _, ok := bind(c, &req); !ok {
		return
	}

	balance, err := h.wallet.GetBalance(c.Request.Context(), req.CoinID, req.Address, req.Contract)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, balance)
}

// GetTransaction returns a transaction from the ledger or the chain
func (h *handler) GetTransaction(c *gin.Context) {
	var req getTransactionRequest
	if _, ok := bind(c, &req); !ok {
		return
	}

	tx, err := h.wallet.GetTransaction(c.Request.Context(), req.TxHash)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, tx)
}

// IsMine reports whether an address belongs to the calling project
func (h *handler) IsMine(c *gin.Context) {
	var req isMineRequest
	projectID, ok := bind(c, &req)
	if !ok {
		return
	}

	mine, err := h.wallet.IsMine(c.Request.Context(), projectID, domain.NormalizeAddress(req.Address))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, mine)
}

// SendTransaction broadcasts a transfer at most once per actionId
func (h *handler) SendTransaction(c *gin.Context) {
	var req sendTransactionRequest
	projectID, ok := bind(c, &req)
	if !ok {
		return
	}
	if !domain.IsValidAddress(req.Sender) || !domain.IsValidAddress(req.Receiver) {
		response.Abort(c, response.NewBadRequestError("sender and receiver must be valid addresses"))
		return
	}

	result, err := h.dispatcher.Dispatch(c.Request.Context(), dispatcher.Request{
		ProjectID: projectID,
		ActionID:  req.ActionID,
		Sender:    domain.NormalizeAddress(req.Sender),
		Receiver:  domain.NormalizeAddress(req.Receiver),
		Amount:    req.Amount.String(),
		CoinID:    req.CoinID,
		Contract:  domain.NormalizeAddress(req.Contract),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, sendTransactionResponse{TxHash: result.TxHash})
}

// SetPassphrase unlocks the project's hot wallet for a coin
func (h *handler) SetPassphrase(c *gin.Context) {
	var req setPassphraseRequest
	projectID, ok := bind(c, &req)
	if !ok {
		return
	}

	if err := h.wallet.SetPassphrase(c.Request.Context(), projectID, req.CoinID, req.Secret); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, true)
}

// RemoveAddress retires a deposit address
func (h *handler) RemoveAddress(c *gin.Context) {
	var req addressRequest
	projectID, ok := bind(c, &req)
	if !ok {
		return
	}

	if err := h.wallet.RemoveAddress(c.Request.Context(), projectID, req.CoinID, req.Address); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, true)
}

// SetHotAddress sets the withdrawal address of a project coin
func (h *handler) SetHotAddress(c *gin.Context) {
	h.setAddress(c, domain.AddressFieldHot)
}

// SetCollectAddress sets the sweep destination of a project coin
func (h *handler) SetCollectAddress(c *gin.Context) {
	h.setAddress(c, domain.AddressFieldCollect)
}

// SetFeeAddress sets the address funding token top-ups
func (h *handler) SetFeeAddress(c *gin.Context) {
	h.setAddress(c, domain.AddressFieldFee)
}

func (h *handler) setAddress(c *gin.Context, field domain.AddressField) {
	var req addressRequest
	projectID, ok := bind(c, &req)
	if !ok {
		return
	}

	if err := h.wallet.SetAddress(c.Request.Context(), projectID, req.CoinID, field, req.Address); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, true)
}

// SetFee sets gas, gas price and fee overrides
func (h *handler) SetFee(c *gin.Context) {
	var req setFeeRequest
	projectID, ok := bind(c, &req)
	if !ok {
		return
	}

	input := store.UpdateFeesInput{Gas: req.Gas, GasPrice: req.GasPrice, Fee: req.Fee}
	if err := h.wallet.SetFee(c.Request.Context(), projectID, req.CoinID, input); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, true)
}

// TurnStatus toggles deposit, withdraw and collect
func (h *handler) TurnStatus(c *gin.Context) {
	var req turnStatusRequest
	projectID, ok := bind(c, &req)
	if !ok {
		return
	}

	input := store.UpdateFlagsInput{IsDeposit: req.IsDeposit, IsWithdraw: req.IsWithdraw, IsCollect: req.IsCollect}
	if err := h.wallet.TurnStatus(c.Request.Context(), projectID, req.CoinID, input); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, true)
}

// AddToken registers an ERC20 contract
func (h *handler) AddToken(c *gin.Context) {
	var req addTokenRequest
	if _, ok := bind(c, &req); !ok {
		return
	}

	coin, err := h.wallet.AddToken(c.Request.Context(), req.CoinID, req.Contract)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"coinId": coin.ID, "name": coin.Name, "symbol": coin.Symbol, "decimal": coin.Decimal})
}

// GetProjectInfo returns the calling project's settings
func (h *handler) GetProjectInfo(c *gin.Context) {
	projectID, ok := middleware.ProjectID(c)
	if !ok {
		response.Abort(c, response.NewUnauthorizedError(response.CodeSignatureRequired, "unauthenticated"))
		return
	}

	info, err := h.wallet.ProjectInfo(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, info)
}

// UpdateProject sets the calling project's callback url
func (h *handler) UpdateProject(c *gin.Context) {
	var req updateProjectRequest
	projectID, ok := bind(c, &req)
	if !ok {
		return
	}

	if err := h.wallet.UpdateCallback(c.Request.Context(), projectID, req.CallbackURL); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, true)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bind decodes the JSON body into req and returns the authenticated project
func bind(c *gin.Context, req any) (uint64, bool) {
	projectID, ok := middleware.ProjectID(c)
	if !ok {
		response.Abort(c, response.NewUnauthorizedError(response.CodeSignatureRequired, "unauthenticated"))
		return 0, false
	}
	if err := c.ShouldBindJSON(req); err != nil {
		response.Abort(c, response.NewBadRequestError(err.Error()))
		return 0, false
	}
	return projectID, true
}

// respondError maps err to an envelope. Unmapped errors are logged and hidden.
func respondError(c *gin.Context, err error) {
	apiErr := response.FromError(err)
	if apiErr.Code == response.CodeInternal {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	}
	response.Abort(c, apiErr)
}
