// Copyright (c) 2026, The StatusKit Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	skerrors "github.com/statuskit/statuskit/pkg/errors"
	"github.com/statuskit/statuskit/pkg/sink"
)

// HTTPStatusFromCode maps a structured error code to an HTTP status.
func HTTPStatusFromCode(code skerrors.ErrorCode) int {
	switch code {
	case skerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case skerrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case skerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case skerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case skerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case skerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case skerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may reasonably retry the
// request for the given code.
func retryableFromCode(code skerrors.ErrorCode) bool {
	switch code {
	case skerrors.ErrCodeTimeout,
		skerrors.ErrCodeUnavailable,
		skerrors.ErrCodeRateLimitExceeded,
		skerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails merges two detail maps, the second overwriting the first.
// Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code skerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	sink.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from err. A
// StructuredError carries its own code, message, and context; anything
// else is reported as an internal error with the fallback message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	var serr *skerrors.StructuredError
	if errors.As(err, &serr) {
		merged := mergeDetails(serr.Context, details)
		if serr.Cause != nil {
			if merged == nil {
				merged = make(map[string]any, 1)
			}
			merged["error"] = serr.Cause.Error()
		}
		WriteError(w, r, HTTPStatusFromCode(serr.Code), serr.Code,
			serr.Message, retryableFromCode(serr.Code), merged)
		return
	}

	merged := mergeDetails(details, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, skerrors.ErrCodeInternal,
		fallbackMessage, true, merged)
}
