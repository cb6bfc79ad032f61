package webhook_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/mocks"
	"github.com/feral-file/ff-hotwallet/internal/webhook"
)

func testPayload() webhook.DepositPayload {
	return webhook.DepositPayload{
		TxHash:      "0xaa01",
		BlockHeight: 101,
		Amount:      "1000000000000000000",
		Address:     "0xaaaa000000000000000000000000000000000001",
		OrderID:     "0123456789abcdef0123456789abcdef",
	}
}

func TestSign(t *testing.T) {
	signer := webhook.NewSigner(adapter.NewJSON(), adapter.NewJCS())
	secret := "test-secret-key"
	eventID := "01JG8XAMPLE12345678901234"

	t.Run("canonical body with valid signature", func(t *testing.T) {
		req, err := signer.Sign(secret, eventID, 1700000000, testPayload())
		require.NoError(t, err)

		assert.Equal(t,
			`{"address":"0xaaaa000000000000000000000000000000000001","amount":"1000000000000000000","blockHeight":101,"orderId":"0123456789abcdef0123456789abcdef","txHash":"0xaa01"}`,
			string(req.Body))

		var parsed webhook.DepositPayload
		require.NoError(t, json.Unmarshal(req.Body, &parsed))
		assert.Equal(t, testPayload(), parsed)

		h := hmac.New(sha256.New, []byte(secret))
		h.Write([]byte(fmt.Sprintf("%d.%s.%s", 1700000000, eventID, string(req.Body))))
		expected := "sha256=" + hex.EncodeToString(h.Sum(nil))

		assert.Equal(t, expected, req.Headers[webhook.HeaderSignature])
		assert.Equal(t, eventID, req.Headers[webhook.HeaderEventID])
		assert.Equal(t, "1700000000", req.Headers[webhook.HeaderTimestamp])
		assert.Equal(t, "application/json", req.Headers["Content-Type"])
	})

	t.Run("signature verifies and rejects tampering", func(t *testing.T) {
		req, err := signer.Sign(secret, eventID, 1700000000, testPayload())
		require.NoError(t, err)

		sig := req.Headers[webhook.HeaderSignature]
		assert.True(t, webhook.VerifySignature(secret, 1700000000, eventID, req.Body, sig))
		assert.False(t, webhook.VerifySignature("other", 1700000000, eventID, req.Body, sig))
		assert.False(t, webhook.VerifySignature(secret, 1700000001, eventID, req.Body, sig))
		assert.False(t, webhook.VerifySignature(secret, 1700000000, eventID, append(req.Body, ' '), sig))
	})

	t.Run("different secrets give different signatures", func(t *testing.T) {
		a := webhook.ComputeSignature("a", 1, "e", []byte("{}"))
		b := webhook.ComputeSignature("b", 1, "e", []byte("{}"))
		assert.NotEqual(t, a, b)
	})
}

func TestSignCodecErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	jsonMock := mocks.NewMockJSON(ctrl)
	jcsMock := mocks.NewMockJCS(ctrl)
	signer := webhook.NewSigner(jsonMock, jcsMock)

	jsonMock.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("marshal"))
	_, err := signer.Sign("s", "e", 1, testPayload())
	require.Error(t, err)

	jsonMock.EXPECT().Marshal(gomock.Any()).Return([]byte(`{}`), nil)
	jcsMock.EXPECT().Transform([]byte(`{}`)).Return(nil, errors.New("jcs"))
	_, err = signer.Sign("s", "e", 1, testPayload())
	require.Error(t, err)
}
