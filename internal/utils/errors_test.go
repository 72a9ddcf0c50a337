package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestHandleAppError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", NewValidationError("bad input"), http.StatusBadRequest, ErrCodeValidation, "bad input"},
		{"not found", NewNotFoundError("missing"), http.StatusNotFound, ErrCodeNotFound, "missing"},
		{"internal", NewInternalError("boom", errors.New("disk on fire")), http.StatusInternalServerError, ErrCodeInternal, "boom"},
		{"wrapped", fmt.Errorf("ctx: %w", NewNotFoundError("gone")), http.StatusNotFound, ErrCodeNotFound, "gone"},
		{"plain error", errors.New("raw"), http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			HandleAppError(rr, tc.err)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			body := decodeError(t, rr)
			assert.False(t, body.Success)
			assert.Equal(t, tc.wantCode, body.Code)
			assert.Equal(t, tc.wantMsg, body.Error)
			assert.Nil(t, body.Details)
		})
	}
}

func TestInternalErrorDoesNotLeakCause(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleAppError(rr, NewInternalError("Failed to create site", errors.New("secret detail")))

	assert.NotContains(t, rr.Body.String(), "secret detail")
}

func TestAppErrorUnwrapAndCode(t *testing.T) {
	cause := errors.New("cause")
	err := NewInternalError("msg", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "cause", err.Error())
	assert.True(t, IsAppErrorCode(err, ErrCodeInternal))
	assert.False(t, IsAppErrorCode(err, ErrCodeValidation))
	assert.False(t, IsAppErrorCode(cause, ErrCodeInternal))
	assert.Equal(t, "msg", NewValidationError("msg").Error())
}

func TestRespondErrorWithCodeDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondErrorWithCode(rr, http.StatusBadRequest, ErrCodeInvalidPayload, "Invalid JSON payload", map[string]int{"offset": 3})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t,
		`{"success":false,"code":"invalid_payload","error":"Invalid JSON payload","details":{"offset":3}}`,
		rr.Body.String(),
	)
}
