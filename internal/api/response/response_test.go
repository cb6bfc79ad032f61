package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-hotwallet/internal/api/response"
	"github.com/feral-file/ff-hotwallet/internal/domain"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   response.Code
	}{
		{"wrapped sentinel", fmt.Errorf("failed to remove: %w", domain.ErrAddressMissing), http.StatusNotFound, response.CodeAddressMissing},
		{"project passphrase", domain.ErrProjectPassphraseMissing, http.StatusPreconditionFailed, response.CodePassphraseMissing},
		{"coin passphrase", domain.ErrCoinPassphraseMissing, http.StatusPreconditionFailed, response.CodePassphraseMissing},
		{"node rejection", &domain.TxSendError{Message: "nonce too low"}, http.StatusBadGateway, response.CodeTxSend},
		{"withdraw disabled", domain.ErrWithdrawDisabled, http.StatusForbidden, response.CodeWithdrawDisabled},
		{"token exists", domain.ErrTokenExists, http.StatusConflict, response.CodeTokenExists},
		{"api error passes through", response.NewBadRequestError("count must be a number"), http.StatusBadRequest, response.CodeBadRequest},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, response.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := response.FromError(tt.err)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.code, apiErr.Code)
		})
	}
}

func TestFromError_KeepsUpstreamMessage(t *testing.T) {
	apiErr := response.FromError(&domain.TxSendError{Message: "insufficient funds for gas"})
	assert.Contains(t, apiErr.Msg, "insufficient funds for gas")

	internal := response.FromError(errors.New("pq: password authentication failed"))
	assert.Equal(t, "internal error", internal.Msg)
}

func TestOKAndAbort(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	response.OK(c, gin.H{"isMine": true})

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.CodeOK, envelope.Code)
	assert.Equal(t, "success", envelope.Msg)
	assert.Equal(t, map[string]any{"isMine": true}, envelope.Data)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	response.Abort(c, response.NewUnauthorizedError(response.CodeSignatureExpired, "timestamp expired"))

	envelope = response.Envelope{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.CodeSignatureExpired, envelope.Code)
	assert.Nil(t, envelope.Data)
	assert.True(t, c.IsAborted())
}
