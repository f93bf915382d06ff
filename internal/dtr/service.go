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

// Package dtr publishes imported assets as Asset Administration Shells: the
// submodel payloads go to the submodel server, the shell descriptor goes to
// the Digital Twin Registry.
package dtr

import (
	"context"
	"fmt"

	"github.com/eclipse-tractusx/traceability-go-components/internal/assets/domain"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/logger"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/metrics"
)

// PayloadRepository returns the stored submodel payloads of an asset.
type PayloadRepository interface {
	GetTypesAndPayloadsByAssetID(ctx context.Context, assetID string) (domain.AspectPayloads, error)
}

// Service creates shells in the registry.
type Service struct {
	payloads  PayloadRepository
	publisher *SubmodelPublisher
	builder   *DescriptorBuilder
	registry  ShellRegistry
	metrics   *metrics.Metrics
}

// NewService wires the publication pipeline. m may be nil.
func NewService(payloads PayloadRepository, publisher *SubmodelPublisher, builder *DescriptorBuilder, registry ShellRegistry, m *metrics.Metrics) *Service {
	return &Service{
		payloads:  payloads,
		publisher: publisher,
		builder:   builder,
		registry:  registry,
		metrics:   m,
	}
}

// CreateShellInDtr publishes all payloads of asset as submodels, then
// registers a shell descriptor referencing them. It returns the asset id.
//
// Aspect types are checked before anything is sent, so an *InvalidAspectTypeError
// never leaves submodels behind. Failures of the submodel store or of the
// registry are returned as *ShellCreationError. Submodels created before a
// failure are not removed.
func (s *Service) CreateShellInDtr(ctx context.Context, asset domain.AssetBase, submodelServerAssetID string) (string, error) {
	payloads, err := s.payloads.GetTypesAndPayloadsByAssetID(ctx, asset.ID)
	if err != nil {
		logger.LogError("DTR-CREATESHELL-LOADPAYLOADS", err, "assetId", asset.ID)
		return "", fmt.Errorf("%w: loading payloads of asset %s", err, asset.ID)
	}
	for aspectType := range payloads {
		if _, err := AspectTypeToIDShort(aspectType); err != nil {
			return "", err
		}
	}
	if len(payloads) == 0 {
		logger.LogWarning("asset has no submodel payloads, registering shell without submodels", "assetId", asset.ID)
	}

	submodelIDs, err := s.publisher.Publish(ctx, payloads)
	if err != nil {
		s.metrics.ShellPublished(metrics.OutcomeFailure)
		return "", &ShellCreationError{AssetID: asset.ID, Err: err}
	}

	descriptor, err := s.builder.Build(asset, submodelIDs, submodelServerAssetID)
	if err != nil {
		s.metrics.ShellPublished(metrics.OutcomeFailure)
		logger.LogError("DTR-CREATESHELL-BUILD", err, "assetId", asset.ID)
		return "", &ShellCreationError{AssetID: asset.ID, Err: err}
	}

	if err := s.registry.CreateShell(ctx, descriptor); err != nil {
		s.metrics.ShellPublished(metrics.OutcomeFailure)
		logger.LogError("DTR-CREATESHELL-REGISTRY", err, "assetId", asset.ID, "shellId", descriptor.Id)
		return "", &ShellCreationError{AssetID: asset.ID, Err: err}
	}

	s.metrics.ShellPublished(metrics.OutcomeSuccess)
	logger.LogInfo("created shell in digital twin registry",
		"assetId", asset.ID, "shellId", descriptor.Id, "submodels", len(submodelIDs))
	return asset.ID, nil
}
