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

package persistence

import (
	"context"
	"maps"
	"sync"

	"github.com/eclipse-tractusx/traceability-go-components/internal/assets/domain"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
)

// InMemoryAssetDatabase is a process local AssetRepository used when no
// PostgreSQL instance is configured.
type InMemoryAssetDatabase struct {
	mu       sync.RWMutex
	assets   map[string]domain.AssetBase
	payloads map[string]domain.AspectPayloads
}

// NewInMemoryAssetDatabase returns an empty store.
func NewInMemoryAssetDatabase() *InMemoryAssetDatabase {
	return &InMemoryAssetDatabase{
		assets:   make(map[string]domain.AssetBase),
		payloads: make(map[string]domain.AspectPayloads),
	}
}

func (m *InMemoryAssetDatabase) SaveAsset(_ context.Context, asset domain.AssetBase) error {
	if asset.ID == "" {
		return common.NewErrBadRequest("asset id must not be empty")
	}
	asset.Attributes = maps.Clone(asset.Attributes)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[asset.ID] = asset
	return nil
}

func (m *InMemoryAssetDatabase) GetAssetByID(_ context.Context, assetID string) (domain.AssetBase, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	asset, ok := m.assets[assetID]
	if !ok {
		return domain.AssetBase{}, common.NewErrNotFound("asset '" + assetID + "'")
	}
	asset.Attributes = maps.Clone(asset.Attributes)
	return asset, nil
}

func (m *InMemoryAssetDatabase) SavePayloads(_ context.Context, assetID string, payloads domain.AspectPayloads) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make(domain.AspectPayloads, len(payloads))
	maps.Copy(stored, payloads)
	m.payloads[assetID] = stored
	return nil
}

func (m *InMemoryAssetDatabase) GetTypesAndPayloadsByAssetID(_ context.Context, assetID string) (domain.AspectPayloads, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(domain.AspectPayloads, len(m.payloads[assetID]))
	maps.Copy(result, m.payloads[assetID])
	return result, nil
}
