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
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/eclipse-tractusx/traceability-go-components/internal/assetimport"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/logger"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/model"
	"github.com/eclipse-tractusx/traceability-go-components/internal/dtr"
	"github.com/eclipse-tractusx/traceability-go-components/internal/edc"
	"github.com/eclipse-tractusx/traceability-go-components/internal/importvalidation"
)

// AssetService imports and publishes assets.
type AssetService interface {
	Import(ctx context.Context, fh *multipart.FileHeader) (assetimport.Report, error)
	Publish(ctx context.Context, assetID string, submodelServerAssetID string) (string, error)
}

// ContractDefinitionCreator registers contract definitions with the EDC.
type ContractDefinitionCreator interface {
	CreateContractDefinition(ctx context.Context, notificationAssetID string, accessPolicyID string) (string, error)
}

// TraceabilityAPIService maps the API actions onto the domain services.
type TraceabilityAPIService struct {
	assets    AssetService
	contracts ContractDefinitionCreator
}

// NewTraceabilityAPIService creates a default api service
func NewTraceabilityAPIService(assets AssetService, contracts ContractDefinitionCreator) *TraceabilityAPIService {
	return &TraceabilityAPIService{assets: assets, contracts: contracts}
}

// ImportAssets - Validates and stores an import document
func (s *TraceabilityAPIService) ImportAssets(ctx context.Context, fh *multipart.FileHeader) (model.ImplResponse, error) {
	report, err := s.assets.Import(ctx, fh)
	if err != nil {
		var validationErr *assetimport.ValidationError
		if errors.As(err, &validationErr) {
			return model.Response(http.StatusBadRequest, common.ValidationErrorResponse{
				Message:          "Import document does not match the import schema",
				ValidationErrors: validationErr.Violations,
			}), err
		}
		if errors.Is(err, importvalidation.ErrStagingFailed) {
			return errorResponse(common.NewInternalServerError(err.Error()), "IMPORT-VALIDATE-STAGING"), err
		}
		return errorResponse(err, "IMPORT-STORE"), err
	}
	return model.Response(http.StatusCreated, report), nil
}

// PublishAsset - Publishes the submodels and the shell of a stored asset
func (s *TraceabilityAPIService) PublishAsset(ctx context.Context, assetID string, req PublishAssetRequest) (model.ImplResponse, error) {
	id, err := s.assets.Publish(ctx, assetID, req.SubmodelServerAssetID)
	if err != nil {
		var aspectErr *dtr.InvalidAspectTypeError
		var shellErr *dtr.ShellCreationError
		switch {
		case errors.As(err, &aspectErr):
			return errorResponse(common.NewErrBadRequest(err.Error()), "DTR-PUBLISH-ASPECTTYPE"), err
		case errors.As(err, &shellErr):
			// registry and submodel server responses stay in the log
			return causedErrorResponse(common.NewErrBadGateway("shell publication failed for "+shellErr.AssetID), err,
				"DTR-PUBLISH-CREATESHELL", "assetId", shellErr.AssetID), err
		case errors.Is(err, dtr.ErrShellCreationFailed):
			return causedErrorResponse(common.NewErrBadGateway("shell publication failed for "+assetID), err,
				"DTR-PUBLISH-CREATESHELL", "assetId", assetID), err
		default:
			return errorResponse(err, "DTR-PUBLISH"), err
		}
	}
	return model.Response(http.StatusCreated, PublishAssetResponse{AssetID: id}), nil
}

// CreateContractDefinition - Registers a contract definition for a notification asset
func (s *TraceabilityAPIService) CreateContractDefinition(ctx context.Context, req CreateContractDefinitionRequest) (model.ImplResponse, error) {
	id, err := s.contracts.CreateContractDefinition(ctx, req.NotificationAssetID, req.AccessPolicyID)
	if err != nil {
		var rejected *edc.ContractDefinitionRejectedError
		switch {
		case errors.Is(err, edc.ErrContractDefinitionAlreadyExists):
			return errorResponse(common.NewErrConflict(err.Error()), "EDC-CONTRACTDEFINITION-CONFLICT"), err
		case errors.As(err, &rejected):
			// the control plane body stays in the log
			return errorResponse(common.NewErrBadGateway("EDC rejected contract definition for "+rejected.AssetID), "EDC-CONTRACTDEFINITION-REJECTED"), err
		case errors.Is(err, edc.ErrContractDefinitionCreationFailed):
			return errorResponse(common.NewErrBadGateway("EDC control plane unreachable"), "EDC-CONTRACTDEFINITION-TRANSPORT"), err
		default:
			return errorResponse(err, "EDC-CONTRACTDEFINITION"), err
		}
	}
	return model.Response(http.StatusCreated, ContractDefinitionResponse{ContractPolicyID: id}), nil
}

func errorResponse(err error, code string) model.ImplResponse {
	status, body := common.NewErrorResponse(err, code)
	if status >= http.StatusInternalServerError {
		logger.LogError(code, err)
	}
	return model.Response(status, body)
}

// causedErrorResponse answers with public and logs cause, which may carry
// remote response bodies.
func causedErrorResponse(public error, cause error, code string, keysAndValues ...any) model.ImplResponse {
	logger.LogError(code, cause, keysAndValues...)
	status, body := common.NewErrorResponse(public, code)
	return model.Response(status, body)
}
