package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NotFound("escrow", "abc")
	assert.Equal(t, KindNotFound, KindOf(err))

	wrapped := fmt.Errorf("handling request: %w", err)
	assert.Equal(t, KindNotFound, KindOf(wrapped))

	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestCodeOf(t *testing.T) {
	err := InvalidTransition("already_released", "escrow already released")
	assert.Equal(t, "already_released", CodeOf(err))
	assert.Equal(t, "internal_error", CodeOf(errors.New("boom")))
}

func TestIsMatchesByKindAndCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", InvalidTransition("already_released", "escrow already released"))

	assert.True(t, errors.Is(err, New(KindInvalidTransition, "already_released", "")))
	// empty code matches any code of the same kind
	assert.True(t, errors.Is(err, New(KindInvalidTransition, "", "")))
	assert.False(t, errors.Is(err, New(KindInvalidTransition, "already_refunded", "")))
	assert.False(t, errors.Is(err, New(KindNotFound, "already_released", "")))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{NotFound("transaction", "x"), http.StatusNotFound},
		{Unauthorized("caller_mismatch", "not the seller of record"), http.StatusForbidden},
		{InvalidTransition("delivery_not_confirmed", "delivery not confirmed"), http.StatusConflict},
		{New(KindAlreadyUsed, "code_already_used", "code already used"), http.StatusConflict},
		{New(KindInvalidCode, "invalid_code", "wrong code"), http.StatusBadRequest},
		{New(KindExpired, "code_expired", "code expired"), http.StatusBadRequest},
		{New(KindCodeLocked, "code_locked", "too many failed attempts"), http.StatusLocked},
		{GatewayFailure("provider unavailable", errors.New("timeout")), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestGatewayFailureWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := GatewayFailure("initiate failed", cause)
	assert.True(t, errors.Is(err, cause))
}
