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
	"context"
	"mime/multipart"
	"net/http"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common/model"
)

// TraceabilityAPIRouter binds requests of the traceability API to handlers.
type TraceabilityAPIRouter interface {
	ImportAssets(http.ResponseWriter, *http.Request)
	PublishAsset(http.ResponseWriter, *http.Request)
	CreateContractDefinition(http.ResponseWriter, *http.Request)
}

// PublishAssetRequest is the body of POST /assets/{assetId}/publish.
type PublishAssetRequest struct {
	SubmodelServerAssetID string `json:"submodelServerAssetId"`
}

// CreateContractDefinitionRequest is the body of POST /edc/contract-definitions.
type CreateContractDefinitionRequest struct {
	NotificationAssetID string `json:"notificationAssetId"`
	AccessPolicyID      string `json:"accessPolicyId"`
}

// PublishAssetResponse is returned after a shell was created.
type PublishAssetResponse struct {
	AssetID string `json:"assetId"`
}

// ContractDefinitionResponse is returned after a contract definition was created.
type ContractDefinitionResponse struct {
	ContractPolicyID string `json:"contractPolicyId"`
}

// TraceabilityAPIServicer performs the traceability API actions.
type TraceabilityAPIServicer interface {
	ImportAssets(context.Context, *multipart.FileHeader) (model.ImplResponse, error)
	PublishAsset(context.Context, string, PublishAssetRequest) (model.ImplResponse, error)
	CreateContractDefinition(context.Context, CreateContractDefinitionRequest) (model.ImplResponse, error)
}
