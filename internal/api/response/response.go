package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-hotwallet/internal/domain"
)

// Code is a stable result code returned in every envelope
type Code int

const (
	CodeOK Code = 0

	// Request errors
	CodeBadRequest        Code = 1000
	CodeSignatureRequired Code = 1100
	CodeSignatureInvalid  Code = 1101
	CodeSignatureExpired  Code = 1102
	CodeAccessKeyDisabled Code = 1103
	CodeAccessKeyUnbound  Code = 1104

	// Address errors
	CodeAddressInvalid      Code = 1200
	CodeAddressCount        Code = 1201
	CodeAddressMissing      Code = 1202
	CodeAddressFieldInvalid Code = 1203

	// Configuration errors
	CodeCoinMissing        Code = 1300
	CodeProjectCoinMissing Code = 1301
	CodeProjectMissing     Code = 1302
	CodeCallbackInvalid    Code = 1303
	CodeConfigMissing      Code = 1304

	// Wallet errors
	CodePassphraseMissing  Code = 1400
	CodePassphraseInvalid  Code = 1401
	CodeWalletUnlockFailed Code = 1402
	CodeKeyMissing         Code = 1403

	// Transfer errors
	CodeInvalidAmount    Code = 1500
	CodeWithdrawDisabled Code = 1501
	CodeFeeArgs          Code = 1502
	CodeTxSend           Code = 1503
	CodeTxMissing        Code = 1504

	// Token errors
	CodeTokenExists      Code = 1600
	CodeTokenUnsupported Code = 1601
	CodeTokenInvalid     Code = 1602

	CodeInternal Code = 5000
)

// Envelope is the body of every API response
type Envelope struct {
	Code Code   `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// APIError is an error with its HTTP status and result code
type APIError struct {
	Status int
	Code   Code
	Msg    string
}

func (e *APIError) Error() string {
	return e.Msg
}

// NewBadRequestError creates an error for a malformed request
func NewBadRequestError(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: CodeBadRequest, Msg: msg}
}

// NewUnauthorizedError creates an error for a rejected signature
func NewUnauthorizedError(code Code, msg string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Code: code, Msg: msg}
}

// NewInternalError creates an error whose details are not exposed to callers
func NewInternalError() *APIError {
	return &APIError{Status: http.StatusInternalServerError, Code: CodeInternal, Msg: "internal error"}
}

// mapping pairs a domain sentinel with its status and code.
// The first match wins.
type mapping struct {
	err    error
	status int
	code   Code
}

var mappings = []mapping{
	{domain.ErrAddressInvalid, http.StatusBadRequest, CodeAddressInvalid},
	{domain.ErrAddressCount, http.StatusBadRequest, CodeAddressCount},
	{domain.ErrAddressMissing, http.StatusNotFound, CodeAddressMissing},
	{domain.ErrAddressFieldInvalid, http.StatusBadRequest, CodeAddressFieldInvalid},
	{domain.ErrCoinMissing, http.StatusNotFound, CodeCoinMissing},
	{domain.ErrProjectCoinMissing, http.StatusNotFound, CodeProjectCoinMissing},
	{domain.ErrProjectMissing, http.StatusNotFound, CodeProjectMissing},
	{domain.ErrCallbackInvalid, http.StatusBadRequest, CodeCallbackInvalid},
	{domain.ErrConfigMissing, http.StatusServiceUnavailable, CodeConfigMissing},
	{domain.ErrPassphraseMissing, http.StatusPreconditionFailed, CodePassphraseMissing},
	{domain.ErrPassphraseInvalid, http.StatusBadRequest, CodePassphraseInvalid},
	{domain.ErrWalletUnlockFailed, http.StatusBadGateway, CodeWalletUnlockFailed},
	{domain.ErrKeyMissing, http.StatusPreconditionFailed, CodeKeyMissing},
	{domain.ErrInvalidAmount, http.StatusBadRequest, CodeInvalidAmount},
	{domain.ErrWithdrawDisabled, http.StatusForbidden, CodeWithdrawDisabled},
	{domain.ErrFeeArgs, http.StatusBadGateway, CodeFeeArgs},
	{domain.ErrTxSend, http.StatusBadGateway, CodeTxSend},
	{domain.ErrTxMissing, http.StatusNotFound, CodeTxMissing},
	{domain.ErrTokenExists, http.StatusConflict, CodeTokenExists},
	{domain.ErrTokenUnsupported, http.StatusBadRequest, CodeTokenUnsupported},
	{domain.ErrTokenInvalid, http.StatusBadRequest, CodeTokenInvalid},
}

// FromError converts err into an APIError. Unknown errors become CodeInternal.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return &APIError{Status: m.status, Code: m.code, Msg: err.Error()}
		}
	}
	return NewInternalError()
}

// OK writes a success envelope
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Code: CodeOK, Msg: "success", Data: data})
}

// Abort writes an error envelope and stops the handler chain
func Abort(c *gin.Context, err *APIError) {
	c.AbortWithStatusJSON(err.Status, Envelope{Code: err.Code, Msg: err.Msg})
}
