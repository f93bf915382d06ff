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

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/model"
	"github.com/go-chi/chi/v5"
)

const defaultMaxUploadBytes = 32 << 20

// TraceabilityAPIController binds http requests to an api service and writes the service results to the http response
type TraceabilityAPIController struct {
	service        TraceabilityAPIServicer
	errorHandler   ErrorHandler
	maxUploadBytes int64
}

// TraceabilityAPIOption for how the controller is set up.
type TraceabilityAPIOption func(*TraceabilityAPIController)

// WithTraceabilityAPIErrorHandler inject ErrorHandler into controller
func WithTraceabilityAPIErrorHandler(h ErrorHandler) TraceabilityAPIOption {
	return func(c *TraceabilityAPIController) {
		c.errorHandler = h
	}
}

// WithMaxUploadBytes limits the size of import uploads.
func WithMaxUploadBytes(n int64) TraceabilityAPIOption {
	return func(c *TraceabilityAPIController) {
		c.maxUploadBytes = n
	}
}

// NewTraceabilityAPIController creates a default api controller
func NewTraceabilityAPIController(s TraceabilityAPIServicer, opts ...TraceabilityAPIOption) *TraceabilityAPIController {
	controller := &TraceabilityAPIController{
		service:        s,
		errorHandler:   DefaultErrorHandler,
		maxUploadBytes: defaultMaxUploadBytes,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all the api routes for the TraceabilityAPIController
func (c *TraceabilityAPIController) Routes() Routes {
	return Routes{
		"ImportAssets": Route{
			strings.ToUpper("Post"),
			"/assets/import",
			c.ImportAssets,
		},
		"PublishAsset": Route{
			strings.ToUpper("Post"),
			"/assets/{assetId}/publish",
			c.PublishAsset,
		},
		"CreateContractDefinition": Route{
			strings.ToUpper("Post"),
			"/edc/contract-definitions",
			c.CreateContractDefinition,
		},
	}
}

// ImportAssets - Validates and stores an import document uploaded as multipart field "file"
func (c *TraceabilityAPIController) ImportAssets(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.maxUploadBytes)
	if err := r.ParseMultipartForm(c.maxUploadBytes); err != nil {
		c.errorHandler(w, r, &ParsingError{Param: "file", Err: err}, nil)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		c.errorHandler(w, r, &ParsingError{Param: "file", Err: errors.New("required parameter is missing")}, nil)
		return
	}

	result, err := c.service.ImportAssets(r.Context(), files[0])
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

// PublishAsset - Publishes the submodels and the shell of a stored asset
func (c *TraceabilityAPIController) PublishAsset(w http.ResponseWriter, r *http.Request) {
	assetIDParam := chi.URLParam(r, "assetId")
	if assetIDParam == "" {
		c.errorHandler(w, r, &ParsingError{Param: "assetId", Err: errors.New("required parameter is missing")}, nil)
		return
	}
	var body PublishAssetRequest
	if err := common.DecodeStrict(r.Body, &body); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}

	result, err := c.service.PublishAsset(r.Context(), assetIDParam, body)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

// CreateContractDefinition - Registers a contract definition for a notification asset
func (c *TraceabilityAPIController) CreateContractDefinition(w http.ResponseWriter, r *http.Request) {
	var body CreateContractDefinitionRequest
	if err := common.DecodeStrict(r.Body, &body); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if body.NotificationAssetID == "" {
		c.errorHandler(w, r, &ParsingError{Param: "notificationAssetId", Err: errors.New("required parameter is missing")}, nil)
		return
	}
	if body.AccessPolicyID == "" {
		c.errorHandler(w, r, &ParsingError{Param: "accessPolicyId", Err: errors.New("required parameter is missing")}, nil)
		return
	}

	result, err := c.service.CreateContractDefinition(r.Context(), body)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}
