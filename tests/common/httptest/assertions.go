//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		Reason    string `json:"reason"`
		SubReason string `json:"sub_reason"`
	} `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	body := DecodeError(t, w)
	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))
	if expectedErrorMsg != "" {
		assert.Contains(t, body.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// AssertReason checks status and the machine-readable detail of a rejection.
func AssertReason(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, reason, subReason string) {
	t.Helper()

	body := DecodeError(t, w)
	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))
	assert.Equal(t, reason, body.Detail.Reason)
	assert.Equal(t, subReason, body.Detail.SubReason)
}

func DecodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Failed to decode error response JSON: %s", w.Body.String())
	return body
}

// AssertHeaders compares only the listed response headers.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
