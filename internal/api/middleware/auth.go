package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/api/response"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/store"
)

const (
	PROJECT_ID_KEY = "project_id"

	AccessKeyField = "accessKey"
	TimestampField = "timestamp"
	SignatureField = "signature"

	DefaultTimestampWindow = 5 * time.Minute
	maxBodyBytes           = 1 << 20
)

// AuthConfig holds request signing configuration
type AuthConfig struct {
	// TimestampWindow is the accepted clock skew in either direction
	TimestampWindow time.Duration
}

// Signature returns a gin middleware verifying the HMAC signature carried in the JSON body.
// On success the project bound to the access key is stored under PROJECT_ID_KEY.
func Signature(cfg AuthConfig, st store.Store, clock adapter.Clock) gin.HandlerFunc {
	if cfg.TimestampWindow <= 0 {
		cfg.TimestampWindow = DefaultTimestampWindow
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
		if err != nil {
			response.Abort(c, response.NewBadRequestError("failed to read body"))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		params, err := decodeParams(body)
		if err != nil {
			response.Abort(c, response.NewBadRequestError("body must be a JSON object"))
			return
		}

		accessKey, _ := params[AccessKeyField].(string)
		signature, _ := params[SignatureField].(string)
		timestamp, hasTimestamp := params[TimestampField]
		if accessKey == "" || signature == "" || !hasTimestamp {
			response.Abort(c, response.NewUnauthorizedError(response.CodeSignatureRequired,
				"accessKey, timestamp and signature are required"))
			return
		}

		ts, err := parseTimestamp(timestamp)
		if err != nil {
			response.Abort(c, response.NewUnauthorizedError(response.CodeSignatureInvalid, "invalid timestamp"))
			return
		}
		skew := clock.Now().Sub(time.Unix(ts, 0))
		if skew > cfg.TimestampWindow || skew < -cfg.TimestampWindow {
			response.Abort(c, response.NewUnauthorizedError(response.CodeSignatureExpired, "timestamp out of window"))
			return
		}

		auth, err := st.GetAPIAuth(ctx, accessKey)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to get api auth: %w", err))
			response.Abort(c, response.NewInternalError())
			return
		}
		if auth == nil {
			warnRejected(c, "unknown access key")
			response.Abort(c, response.NewUnauthorizedError(response.CodeSignatureInvalid, "invalid signature"))
			return
		}
		if auth.Status == 0 {
			warnRejected(c, "disabled access key")
			response.Abort(c, response.NewUnauthorizedError(response.CodeAccessKeyDisabled, "access key disabled"))
			return
		}
		if auth.ProjectID == 0 {
			response.Abort(c, response.NewUnauthorizedError(response.CodeAccessKeyUnbound, "access key not bound to a project"))
			return
		}

		expected := Sign(auth.SecretKey, params)
		if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
			warnRejected(c, "signature mismatch")
			response.Abort(c, response.NewUnauthorizedError(response.CodeSignatureInvalid, "invalid signature"))
			return
		}

		c.Set(PROJECT_ID_KEY, auth.ProjectID)
		c.Next()
	}
}

// ProjectID returns the project authenticated by Signature
func ProjectID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(PROJECT_ID_KEY)
	if !ok {
		return 0, false
	}
	projectID, ok := v.(uint64)
	return projectID, ok
}

// Sign returns the hex HMAC-SHA256 of the canonical form of params.
// The canonical form joins k=v pairs with & in key order, leaving out accessKey and signature.
func Sign(secretKey string, params map[string]any) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(canonical(params)))
	return hex.EncodeToString(mac.Sum(nil))
}

func canonical(params map[string]any) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		if key == AccessKeyField || key == SignatureField {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+formatValue(params[key]))
	}
	return strings.Join(pairs, "&")
}

// formatValue renders strings and numbers verbatim and anything else as compact JSON
func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(b)
	}
}

// decodeParams decodes a JSON object keeping numbers in their original text
func decodeParams(body []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var params map[string]any
	if err := decoder.Decode(&params); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, fmt.Errorf("empty body")
	}
	return params, nil
}

func parseTimestamp(v any) (int64, error) {
	switch value := v.(type) {
	case json.Number:
		if ts, err := value.Int64(); err == nil {
			return ts, nil
		}
		f, err := value.Float64()
		if err != nil {
			return 0, err
		}
		return int64(f), nil
	case string:
		return strconv.ParseInt(value, 10, 64)
	default:
		return 0, fmt.Errorf("unsupported timestamp type %T", v)
	}
}

func warnRejected(c *gin.Context, reason string) {
	logger.WarnCtx(c.Request.Context(), "Rejected signed request",
		zap.String("reason", reason),
		zap.String("path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
	)
}
