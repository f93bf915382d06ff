/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package common

import (
	"errors"
	"net/http"
	"strings"
)

const (
	prefixBadRequest     = "400 Bad Request: "
	prefixNotFound       = "404 Not Found: "
	prefixConflict       = "409 Conflict: "
	prefixInternalServer = "500 Internal Server Error: "
	prefixBadGateway     = "502 Bad Gateway: "
)

// ErrorHandler is the JSON body returned for failed requests.
type ErrorHandler struct {
	MessageType   string `json:"messageType"`
	Text          string `json:"text"`
	Code          string `json:"code,omitempty"`
	CorrelationId string `json:"correlationId,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
}

// NewErrorHandler creates the error body for text.
func NewErrorHandler(messageType string, text error, code string, correlationId string, timestamp string) *ErrorHandler {
	return &ErrorHandler{
		MessageType:   messageType,
		Text:          text.Error(),
		Code:          code,
		CorrelationId: correlationId,
		Timestamp:     timestamp,
	}
}

// ValidationErrorResponse is returned when an uploaded document violates the import schema.
type ValidationErrorResponse struct {
	Message          string   `json:"message"`
	ValidationErrors []string `json:"validationResult"`
}

func NewErrNotFound(elementId string) error {
	return errors.New(prefixNotFound + elementId)
}

func NewErrBadRequest(message string) error {
	return errors.New(prefixBadRequest + message)
}

func NewErrConflict(message string) error {
	return errors.New(prefixConflict + message)
}

func NewInternalServerError(message string) error {
	return errors.New(prefixInternalServer + message)
}

// NewErrBadGateway marks a failure reported by a remote system (registry,
// submodel server, EDC control plane).
func NewErrBadGateway(message string) error {
	return errors.New(prefixBadGateway + message)
}

func IsErrNotFound(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixNotFound)
}

func IsErrBadRequest(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixBadRequest)
}

func IsErrConflict(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixConflict)
}

func IsErrBadGateway(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixBadGateway)
}

// StatusCodeOf maps a status-prefixed error to its HTTP status code.
// Errors without a known prefix map to 500.
func StatusCodeOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsErrBadRequest(err):
		return http.StatusBadRequest
	case IsErrNotFound(err):
		return http.StatusNotFound
	case IsErrConflict(err):
		return http.StatusConflict
	case IsErrBadGateway(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the error body and status code for err.
//
// Parameters:
//   - err: status-prefixed error (see NewErrBadRequest and friends)
//   - code: stable error code, e.g. "DTR-PUBLISH-CREATESHELL"
func NewErrorResponse(err error, code string) (int, *ErrorHandler) {
	status := StatusCodeOf(err)
	messageType := "Error"
	if status < http.StatusInternalServerError {
		messageType = "Warning"
	}
	return status, NewErrorHandler(messageType, err, code, "", GetCurrentTimestamp())
}
