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

// Package edc registers contract definitions with the provider EDC control plane.
package edc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/logger"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/metrics"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

const defaultAPIKeyHeader = "X-Api-Key"

// ContractDefinitionService posts contract definitions to
// <providerEdcUrl><negotiationPath>. Requests are never retried.
type ContractDefinitionService struct {
	endpoint     string
	apiKeyHeader string
	apiKey       string
	client       *http.Client
	metrics      *metrics.Metrics
}

// NewContractDefinitionService creates the service from the EDC settings. m may be nil.
func NewContractDefinitionService(cfg common.EDCConfig, client *http.Client, m *metrics.Metrics) (*ContractDefinitionService, error) {
	if strings.TrimSpace(cfg.ProviderEdcURL) == "" {
		return nil, errors.New("provider edc url must not be empty")
	}
	if client == nil {
		client = http.DefaultClient
	}
	header := cfg.APIKeyHeader
	if header == "" {
		header = defaultAPIKeyHeader
	}
	return &ContractDefinitionService{
		endpoint:     common.JoinURL(cfg.ProviderEdcURL, cfg.NegotiationPath),
		apiKeyHeader: header,
		apiKey:       cfg.APIKey,
		client:       client,
		metrics:      m,
	}, nil
}

// Submit sends one contract definition with a fresh contract policy id and
// classifies the answer. The error is only set when no answer was received;
// it then wraps ErrContractDefinitionCreationFailed.
func (s *ContractDefinitionService) Submit(ctx context.Context, notificationAssetID string, accessPolicyID string) (ContractDefinitionResult, error) {
	request := NewContractDefinitionRequest(notificationAssetID, accessPolicyID, uuid.NewString())

	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(request)
	if err != nil {
		return ContractDefinitionResult{}, fmt.Errorf("%w: %v", ErrContractDefinitionCreationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return ContractDefinitionResult{}, fmt.Errorf("%w: %v", ErrContractDefinitionCreationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set(s.apiKeyHeader, s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.metrics.ContractDefinitionSubmitted(metrics.OutcomeFailure)
		logger.LogError("EDC-CONTRACTDEFINITION-REQUEST", err,
			"notificationAssetId", notificationAssetID, "accessPolicyId", accessPolicyID)
		return ContractDefinitionResult{}, fmt.Errorf("%w for %s notification asset and %s policy definition id: %w",
			ErrContractDefinitionCreationFailed, notificationAssetID, accessPolicyID, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	result := ContractDefinitionResult{
		ContractPolicyID: request.ContractPolicyID,
		Status:           resp.StatusCode,
		Body:             common.ReadDiagnosticBody(resp.Body, 64*1024),
	}
	switch resp.StatusCode {
	case http.StatusOK:
		result.Outcome = OutcomeCreated
		s.metrics.ContractDefinitionSubmitted(metrics.OutcomeSuccess)
	case http.StatusConflict:
		result.Outcome = OutcomeConflict
		s.metrics.ContractDefinitionSubmitted(metrics.OutcomeConflict)
		logger.LogInfo("asset contract definition already exists in the EDC", "notificationAssetId", notificationAssetID)
	default:
		result.Outcome = OutcomeRejected
		s.metrics.ContractDefinitionSubmitted(metrics.OutcomeRejected)
		logger.LogError("EDC-CONTRACTDEFINITION-STATUS", fmt.Errorf("status %d", resp.StatusCode),
			"notificationAssetId", notificationAssetID, "body", result.Body)
	}
	return result, nil
}

// CreateContractDefinition creates the contract definition and returns the
// generated contract policy id. A 409 answer yields
// ErrContractDefinitionAlreadyExists, any other non-200 answer a
// *ContractDefinitionRejectedError.
func (s *ContractDefinitionService) CreateContractDefinition(ctx context.Context, notificationAssetID string, accessPolicyID string) (string, error) {
	result, err := s.Submit(ctx, notificationAssetID, accessPolicyID)
	if err != nil {
		return "", err
	}
	switch result.Outcome {
	case OutcomeCreated:
		return result.ContractPolicyID, nil
	case OutcomeConflict:
		return "", ErrContractDefinitionAlreadyExists
	default:
		return "", &ContractDefinitionRejectedError{AssetID: notificationAssetID, Status: result.Status, Body: result.Body}
	}
}
