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

// Package api exposes the import, publication and contract definition
// operations over HTTP.
package api

import (
	"errors"
	"net/http"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/model"
)

// Route defines the parameters for an API endpoint.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes is a map of defined API endpoints.
type Routes map[string]Route

// Router defines the required methods for retrieving API routes.
type Router interface {
	Routes() Routes
}

// ParsingError indicates that an error has occurred when parsing request parameters
type ParsingError struct {
	Param string
	Err   error
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

func (e *ParsingError) Error() string {
	if e.Param == "" {
		return e.Err.Error()
	}
	return e.Param + ": " + e.Err.Error()
}

// ErrorHandler writes the response of a failed request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error, result *model.ImplResponse)

// DefaultErrorHandler answers parsing errors with 400. Other errors use the
// response prepared by the servicer, or 500 if there is none.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error, result *model.ImplResponse) {
	var parsingErr *ParsingError
	if errors.As(err, &parsingErr) {
		status, body := common.NewErrorResponse(common.NewErrBadRequest(err.Error()), "API-PARSE-REQUEST")
		_ = model.EncodeJSONResponse(body, &status, w)
		return
	}
	if result != nil && result.Body != nil && result.Code != 0 {
		_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
		return
	}
	status, body := common.NewErrorResponse(err, "API-UNHANDLED")
	_ = model.EncodeJSONResponse(body, &status, w)
}
