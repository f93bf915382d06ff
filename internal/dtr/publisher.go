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

package dtr

import (
	"context"
	"sort"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common/logger"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/metrics"
	"github.com/google/uuid"
)

// SubmodelStore receives one payload under a fresh submodel id.
type SubmodelStore interface {
	Save(ctx context.Context, id string, payload string) error
}

// SubmodelPublisher stores every aspect payload of an asset under a new id.
type SubmodelPublisher struct {
	store   SubmodelStore
	metrics *metrics.Metrics
}

// NewSubmodelPublisher creates a publisher writing to store. m may be nil.
func NewSubmodelPublisher(store SubmodelStore, m *metrics.Metrics) *SubmodelPublisher {
	return &SubmodelPublisher{store: store, metrics: m}
}

// Publish saves each payload under a fresh UUID and returns aspect type -> submodel id.
// Aspect types are processed in sorted order. The first failing save stops
// publication; the submodels created so far are returned together with a
// *PartialPublicationError and are left in the store.
func (p *SubmodelPublisher) Publish(ctx context.Context, payloads map[string]string) (map[string]string, error) {
	aspectTypes := make([]string, 0, len(payloads))
	for aspectType := range payloads {
		aspectTypes = append(aspectTypes, aspectType)
	}
	sort.Strings(aspectTypes)

	created := make(map[string]string, len(payloads))
	for _, aspectType := range aspectTypes {
		submodelID := uuid.NewString()
		if err := p.store.Save(ctx, submodelID, payloads[aspectType]); err != nil {
			p.metrics.SubmodelPublished(metrics.OutcomeFailure)
			logger.LogError("DTR-PUBLISH-SAVESUBMODEL", err, "aspectType", aspectType, "submodelId", submodelID)
			return created, &PartialPublicationError{AspectType: aspectType, Created: created, Err: err}
		}
		p.metrics.SubmodelPublished(metrics.OutcomeSuccess)
		logger.LogInfo("created submodel on submodel server", "submodelId", submodelID, "aspectType", aspectType)
		created[aspectType] = submodelID
	}
	return created, nil
}
