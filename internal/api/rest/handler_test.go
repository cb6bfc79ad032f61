package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-hotwallet/internal/api/middleware"
	"github.com/feral-file/ff-hotwallet/internal/api/response"
	"github.com/feral-file/ff-hotwallet/internal/api/rest"
	"github.com/feral-file/ff-hotwallet/internal/dispatcher"
	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/mocks"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
	"github.com/feral-file/ff-hotwallet/internal/wallet"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const (
	projectID = uint64(7)
	sender    = "0xabcdef0000000000000000000000000000000001"
	receiver  = "0xabcdef0000000000000000000000000000000002"
)

type testHandlerMocks struct {
	wallet     *mocks.MockWallet
	dispatcher *mocks.MockDispatcher
	router     *gin.Engine
}

func setupTestHandler(t *testing.T) *testHandlerMocks {
	ctrl := gomock.NewController(t)
	tm := &testHandlerMocks{
		wallet:     mocks.NewMockWallet(ctrl),
		dispatcher: mocks.NewMockDispatcher(ctrl),
	}

	authenticated := func(c *gin.Context) {
		c.Set(middleware.PROJECT_ID_KEY, projectID)
		c.Next()
	}
	tm.router = gin.New()
	rest.SetupRoutes(tm.router, rest.NewHandler(tm.wallet, tm.dispatcher), authenticated)
	return tm
}

func post(t *testing.T, router *gin.Engine, path string, body any) (*httptest.ResponseRecorder, response.Envelope) {
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/"+path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestHandler_HealthCheck(t *testing.T) {
	tm := setupTestHandler(t)

	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandler_GetBlockHeight(t *testing.T) {
	tm := setupTestHandler(t)
	tm.wallet.EXPECT().BlockHeight(gomock.Any()).Return(domain.BlockHeight{CurrentHeight: 5, HighestHeight: 6}, nil)

	w, envelope := post(t, tm.router, "getBlockHeight", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.CodeOK, envelope.Code)
	assert.Equal(t, map[string]any{"currentHeight": float64(5), "highestHeight": float64(6)}, envelope.Data)
}

func TestHandler_NewAddress(t *testing.T) {
	t.Run("default count", func(t *testing.T) {
		tm := setupTestHandler(t)
		tm.wallet.EXPECT().CreateAddresses(gomock.Any(), projectID, uint64(1), rest.DefaultNewAddressCount).Return([]string{sender}, nil)

		w, envelope := post(t, tm.router, "newAddress", map[string]any{"coinId": 1})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []any{sender}, envelope.Data)
	})

	t.Run("count out of range", func(t *testing.T) {
		tm := setupTestHandler(t)
		tm.wallet.EXPECT().CreateAddresses(gomock.Any(), projectID, uint64(1), 500).Return(nil, domain.ErrAddressCount)

		w, envelope := post(t, tm.router, "newAddress", map[string]any{"coinId": 1, "count": 500})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.CodeAddressCount, envelope.Code)
	})

	t.Run("missing coin", func(t *testing.T) {
		tm := setupTestHandler(t)

		w, envelope := post(t, tm.router, "newAddress", map[string]any{"count": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.CodeBadRequest, envelope.Code)
	})

	t.Run("locked wallet", func(t *testing.T) {
		tm := setupTestHandler(t)
		tm.wallet.EXPECT().CreateAddresses(gomock.Any(), projectID, uint64(1), 1).Return(nil, domain.ErrCoinPassphraseMissing)

		w, envelope := post(t, tm.router, "newAddress", map[string]any{"coinId": 1, "count": 1})
		assert.Equal(t, http.StatusPreconditionFailed, w.Code)
		assert.Equal(t, response.CodePassphraseMissing, envelope.Code)
	})
}

func TestHandler_GetBalance(t *testing.T) {
	tm := setupTestHandler(t)
	tm.wallet.EXPECT().GetBalance(gomock.Any(), uint64(1), sender, "").Return("1.500000000000000000", nil)

	_, envelope := post(t, tm.router, "getBalance", map[string]any{"coinId": 1, "address": sender})
	assert.Equal(t, "1.500000000000000000", envelope.Data)
}

func TestHandler_GetTransaction(t *testing.T) {
	tm := setupTestHandler(t)
	tm.wallet.EXPECT().GetTransaction(gomock.Any(), "0xhash").Return(&wallet.TransactionInfo{TxHash: "0xhash", ConfirmNumber: 3}, nil)

	_, envelope := post(t, tm.router, "getTransaction", map[string]any{"txHash": "0xhash"})
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "0xhash", data["txHash"])
	assert.Equal(t, float64(3), data["confirmNumber"])

	tm.wallet.EXPECT().GetTransaction(gomock.Any(), "0xgone").Return(nil, domain.ErrTxMissing)
	w, envelope := post(t, tm.router, "getTransaction", map[string]any{"txHash": "0xgone"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.CodeTxMissing, envelope.Code)
}

func TestHandler_IsMine(t *testing.T) {
	tm := setupTestHandler(t)
	tm.wallet.EXPECT().IsMine(gomock.Any(), projectID, sender).Return(true, nil)

	_, envelope := post(t, tm.router, "isMine", map[string]any{"address": "0xABCDEF0000000000000000000000000000000001"})
	assert.Equal(t, true, envelope.Data)
}

func TestHandler_SendTransaction(t *testing.T) {
	t.Run("dispatches", func(t *testing.T) {
		tm := setupTestHandler(t)
		tm.dispatcher.EXPECT().Dispatch(gomock.Any(), dispatcher.Request{
			ProjectID: projectID,
			ActionID:  "abc123",
			Sender:    sender,
			Receiver:  receiver,
			Amount:    "10.5",
			CoinID:    2,
			Contract:  "0xdac17f958d2ee523a2206206994597c13d831ec7",
		}).Return(&dispatcher.Result{TxHash: "0xsent"}, nil)

		w, envelope := post(t, tm.router, "sendTransaction", map[string]any{
			"actionId": "abc123",
			"sender":   sender,
			"receiver": receiver,
			"amount":   "10.5",
			"coinId":   2,
			"contract": "0xDAC17F958D2EE523A2206206994597C13D831EC7",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"txHash": "0xsent"}, envelope.Data)
	})

	t.Run("numeric amount", func(t *testing.T) {
		tm := setupTestHandler(t)
		tm.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, req dispatcher.Request) (*dispatcher.Result, error) {
				assert.Equal(t, "3", req.Amount)
				return &dispatcher.Result{TxHash: "0xsent"}, nil
			})

		w, _ := post(t, tm.router, "sendTransaction", map[string]any{
			"actionId": "abc124", "sender": sender, "receiver": receiver, "amount": 3, "coinId": 1,
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid receiver", func(t *testing.T) {
		tm := setupTestHandler(t)

		w, envelope := post(t, tm.router, "sendTransaction", map[string]any{
			"actionId": "abc125", "sender": sender, "receiver": "nobody", "amount": "1", "coinId": 1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.CodeBadRequest, envelope.Code)
	})

	t.Run("broadcast failure carries node message", func(t *testing.T) {
		tm := setupTestHandler(t)
		tm.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil, &domain.TxSendError{Message: "insufficient funds"})

		w, envelope := post(t, tm.router, "sendTransaction", map[string]any{
			"actionId": "abc126", "sender": sender, "receiver": receiver, "amount": "1", "coinId": 1,
		})
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, response.CodeTxSend, envelope.Code)
		assert.Contains(t, envelope.Msg, "insufficient funds")
	})

	t.Run("withdraw disabled", func(t *testing.T) {
		tm := setupTestHandler(t)
		tm.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil, domain.ErrWithdrawDisabled)

		w, envelope := post(t, tm.router, "sendTransaction", map[string]any{
			"actionId": "abc127", "sender": sender, "receiver": receiver, "amount": "1", "coinId": 1,
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, response.CodeWithdrawDisabled, envelope.Code)
	})
}

func TestHandler_ProjectCoinSettings(t *testing.T) {
	tm := setupTestHandler(t)

	tm.wallet.EXPECT().SetPassphrase(gomock.Any(), projectID, uint64(1), "cipher").Return(nil)
	_, envelope := post(t, tm.router, "setPassphrase", map[string]any{"coinId": 1, "secret": "cipher"})
	assert.Equal(t, true, envelope.Data)

	tm.wallet.EXPECT().SetAddress(gomock.Any(), projectID, uint64(1), domain.AddressFieldHot, sender).Return(nil)
	_, envelope = post(t, tm.router, "setHotAddress", map[string]any{"coinId": 1, "address": sender})
	assert.Equal(t, response.CodeOK, envelope.Code)

	tm.wallet.EXPECT().SetAddress(gomock.Any(), projectID, uint64(1), domain.AddressFieldCollect, sender).Return(nil)
	_, envelope = post(t, tm.router, "setCollectAddress", map[string]any{"coinId": 1, "address": sender})
	assert.Equal(t, response.CodeOK, envelope.Code)

	tm.wallet.EXPECT().SetAddress(gomock.Any(), projectID, uint64(1), domain.AddressFieldFee, "bad").Return(domain.ErrAddressInvalid)
	w, envelope := post(t, tm.router, "setFeeAddress", map[string]any{"coinId": 1, "address": "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.CodeAddressInvalid, envelope.Code)

	tm.wallet.EXPECT().RemoveAddress(gomock.Any(), projectID, uint64(1), sender).Return(domain.ErrAddressMissing)
	w, envelope = post(t, tm.router, "removeAddress", map[string]any{"coinId": 1, "address": sender})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.CodeAddressMissing, envelope.Code)

	tm.wallet.EXPECT().SetFee(gomock.Any(), projectID, uint64(1), gomock.Any()).DoAndReturn(
		func(_ any, _, _ uint64, input store.UpdateFeesInput) error {
			require.NotNil(t, input.Gas)
			assert.Equal(t, "21000", *input.Gas)
			assert.Nil(t, input.GasPrice)
			return nil
		})
	_, envelope = post(t, tm.router, "setFee", map[string]any{"coinId": 1, "gas": "21000"})
	assert.Equal(t, response.CodeOK, envelope.Code)

	tm.wallet.EXPECT().TurnStatus(gomock.Any(), projectID, uint64(1), gomock.Any()).DoAndReturn(
		func(_ any, _, _ uint64, input store.UpdateFlagsInput) error {
			require.NotNil(t, input.IsCollect)
			assert.False(t, *input.IsCollect)
			assert.Nil(t, input.IsDeposit)
			return nil
		})
	_, envelope = post(t, tm.router, "turnStatus", map[string]any{"coinId": 1, "isCollect": false})
	assert.Equal(t, response.CodeOK, envelope.Code)
}

func TestHandler_AddToken(t *testing.T) {
	tm := setupTestHandler(t)
	tm.wallet.EXPECT().AddToken(gomock.Any(), uint64(1), "0xdac17f958d2ee523a2206206994597c13d831ec7").
		Return(&schema.Coin{ID: 3, Name: "Tether", Symbol: "USDT", Decimal: 6}, nil)

	_, envelope := post(t, tm.router, "addToken", map[string]any{"coinId": 1, "contract": "0xdac17f958d2ee523a2206206994597c13d831ec7"})
	assert.Equal(t, map[string]any{"coinId": float64(3), "name": "Tether", "symbol": "USDT", "decimal": float64(6)}, envelope.Data)

	tm.wallet.EXPECT().AddToken(gomock.Any(), uint64(1), gomock.Any()).Return(nil, domain.ErrTokenExists)
	w, envelope := post(t, tm.router, "addToken", map[string]any{"coinId": 1, "contract": "0xdac17f958d2ee523a2206206994597c13d831ec7"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, response.CodeTokenExists, envelope.Code)
}

func TestHandler_Project(t *testing.T) {
	tm := setupTestHandler(t)

	tm.wallet.EXPECT().ProjectInfo(gomock.Any(), projectID).Return(&wallet.ProjectInfo{ProjectID: projectID, Name: "shop"}, nil)
	_, envelope := post(t, tm.router, "getProjectInfo", map[string]any{})
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "shop", data["name"])

	tm.wallet.EXPECT().UpdateCallback(gomock.Any(), projectID, "ftp://x").Return(domain.ErrCallbackInvalid)
	w, envelope := post(t, tm.router, "updateProject", map[string]any{"callbackUrl": "ftp://x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.CodeCallbackInvalid, envelope.Code)
}

func TestHandler_InternalErrorsAreHidden(t *testing.T) {
	tm := setupTestHandler(t)
	tm.wallet.EXPECT().BlockHeight(gomock.Any()).Return(domain.BlockHeight{}, errors.New("dial tcp 10.0.0.1:8545: refused"))

	w, envelope := post(t, tm.router, "getBlockHeight", map[string]any{})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.CodeInternal, envelope.Code)
	assert.Equal(t, "internal error", envelope.Msg)
}
