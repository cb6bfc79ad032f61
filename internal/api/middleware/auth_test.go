package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-hotwallet/internal/api/middleware"
	"github.com/feral-file/ff-hotwallet/internal/api/response"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/mocks"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const (
	accessKey = "ak-test"
	secretKey = "sk-test"
)

var now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type testAuthMocks struct {
	store  *mocks.MockStore
	clock  *mocks.MockClock
	router *gin.Engine
	// body is the raw body seen by the downstream handler
	body []byte
}

func setupTestAuth(t *testing.T) *testAuthMocks {
	ctrl := gomock.NewController(t)
	tm := &testAuthMocks{
		store: mocks.NewMockStore(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	tm.router = gin.New()
	tm.router.POST("/api/v1/echo",
		middleware.Signature(middleware.AuthConfig{TimestampWindow: time.Minute}, tm.store, tm.clock),
		func(c *gin.Context) {
			projectID, ok := middleware.ProjectID(c)
			require.True(t, ok)
			body, err := io.ReadAll(c.Request.Body)
			require.NoError(t, err)
			tm.body = body
			response.OK(c, projectID)
		})
	return tm
}

func signedBody(t *testing.T, params map[string]any, secret string) []byte {
	// Round-trip through the decoder so numbers are signed in their wire form
	raw, err := json.Marshal(params)
	require.NoError(t, err)
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var decoded map[string]any
	require.NoError(t, decoder.Decode(&decoded))

	params["signature"] = middleware.Sign(secret, decoded)
	body, err := json.Marshal(params)
	require.NoError(t, err)
	return body
}

func do(router *gin.Engine, body []byte) (*httptest.ResponseRecorder, response.Envelope) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/echo", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope response.Envelope
	_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	return w, envelope
}

func TestSign_Canonical(t *testing.T) {
	params := map[string]any{
		"accessKey": "ignored",
		"signature": "ignored",
		"timestamp": json.Number("1700000000"),
		"coinId":    json.Number("1"),
		"address":   "0xabc",
		"flag":      true,
	}
	a := middleware.Sign(secretKey, params)

	params["accessKey"] = "changed"
	params["signature"] = "changed"
	assert.Equal(t, a, middleware.Sign(secretKey, params))

	params["coinId"] = json.Number("2")
	assert.NotEqual(t, a, middleware.Sign(secretKey, params))
	assert.Len(t, a, 64)
}

func TestSignature_Accepts(t *testing.T) {
	tm := setupTestAuth(t)
	tm.store.EXPECT().GetAPIAuth(gomock.Any(), accessKey).Return(&schema.APIAuth{
		ProjectID: 7, AccessKey: accessKey, SecretKey: secretKey, Status: 1,
	}, nil)

	body := signedBody(t, map[string]any{
		"accessKey": accessKey,
		"timestamp": now.Unix() - 30,
		"coinId":    1,
		"address":   "0xabc",
	}, secretKey)

	w, envelope := do(tm.router, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.CodeOK, envelope.Code)
	assert.EqualValues(t, 7, envelope.Data)
	assert.Equal(t, body, tm.body)
}

func TestSignature_Rejects(t *testing.T) {
	auth := &schema.APIAuth{ProjectID: 7, AccessKey: accessKey, SecretKey: secretKey, Status: 1}
	valid := func() map[string]any {
		return map[string]any{"accessKey": accessKey, "timestamp": now.Unix(), "coinId": 1}
	}

	tests := []struct {
		name   string
		body   func(t *testing.T) []byte
		setup  func(tm *testAuthMocks)
		status int
		code   response.Code
	}{
		{
			name:   "not json",
			body:   func(t *testing.T) []byte { return []byte("coinId=1") },
			status: http.StatusBadRequest,
			code:   response.CodeBadRequest,
		},
		{
			name: "missing signature",
			body: func(t *testing.T) []byte {
				b, _ := json.Marshal(valid())
				return b
			},
			status: http.StatusUnauthorized,
			code:   response.CodeSignatureRequired,
		},
		{
			name: "expired timestamp",
			body: func(t *testing.T) []byte {
				params := valid()
				params["timestamp"] = now.Add(-2 * time.Minute).Unix()
				return signedBody(t, params, secretKey)
			},
			status: http.StatusUnauthorized,
			code:   response.CodeSignatureExpired,
		},
		{
			name: "future timestamp",
			body: func(t *testing.T) []byte {
				params := valid()
				params["timestamp"] = now.Add(2 * time.Minute).Unix()
				return signedBody(t, params, secretKey)
			},
			status: http.StatusUnauthorized,
			code:   response.CodeSignatureExpired,
		},
		{
			name: "unknown access key",
			body: func(t *testing.T) []byte { return signedBody(t, valid(), secretKey) },
			setup: func(tm *testAuthMocks) {
				tm.store.EXPECT().GetAPIAuth(gomock.Any(), accessKey).Return(nil, nil)
			},
			status: http.StatusUnauthorized,
			code:   response.CodeSignatureInvalid,
		},
		{
			name: "disabled key",
			body: func(t *testing.T) []byte { return signedBody(t, valid(), secretKey) },
			setup: func(tm *testAuthMocks) {
				disabled := *auth
				disabled.Status = 0
				tm.store.EXPECT().GetAPIAuth(gomock.Any(), accessKey).Return(&disabled, nil)
			},
			status: http.StatusUnauthorized,
			code:   response.CodeAccessKeyDisabled,
		},
		{
			name: "wrong secret",
			body: func(t *testing.T) []byte { return signedBody(t, valid(), "other-secret") },
			setup: func(tm *testAuthMocks) {
				tm.store.EXPECT().GetAPIAuth(gomock.Any(), accessKey).Return(auth, nil)
			},
			status: http.StatusUnauthorized,
			code:   response.CodeSignatureInvalid,
		},
		{
			name: "tampered body",
			body: func(t *testing.T) []byte {
				b := signedBody(t, valid(), secretKey)
				return bytes.Replace(b, []byte(`"coinId":1`), []byte(`"coinId":2`), 1)
			},
			setup: func(tm *testAuthMocks) {
				tm.store.EXPECT().GetAPIAuth(gomock.Any(), accessKey).Return(auth, nil)
			},
			status: http.StatusUnauthorized,
			code:   response.CodeSignatureInvalid,
		},
		{
			name: "store failure",
			body: func(t *testing.T) []byte { return signedBody(t, valid(), secretKey) },
			setup: func(tm *testAuthMocks) {
				tm.store.EXPECT().GetAPIAuth(gomock.Any(), accessKey).Return(nil, errors.New("db down"))
			},
			status: http.StatusInternalServerError,
			code:   response.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestAuth(t)
			if tt.setup != nil {
				tt.setup(tm)
			}

			w, envelope := do(tm.router, tt.body(t))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, envelope.Code)
			assert.Nil(t, tm.body)
		})
	}
}

func TestProjectID_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil).WithContext(context.Background())
	_, ok := middleware.ProjectID(c)
	assert.False(t, ok)
}
