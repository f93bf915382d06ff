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
	"errors"
	"testing"

	"github.com/eclipse-tractusx/traceability-go-components/internal/assets/domain"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

var testAsset = domain.AssetBase{
	ID:                 "urn:uuid:254604ab-2153-45fb-8cad-54ef09f4080f",
	IDShort:            "Vehicle",
	ManufacturerID:     "BPNL00000003CML1",
	ManufacturerPartID: "MPI-4711",
}

func newTestService(t *testing.T, payloads PayloadRepository, store SubmodelStore, registry ShellRegistry, m *metrics.Metrics) *Service {
	t.Helper()
	return NewService(payloads, NewSubmodelPublisher(store, m), newTestBuilder(t), registry, m)
}

func TestCreateShellInDtr(t *testing.T) {
	t.Parallel()

	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	store := newRecordingStore()
	registry := &fakeRegistry{}
	payloads := fakePayloads{payloads: domain.AspectPayloads{
		batchAspect: `{"catenaXId":"urn:uuid:254604ab-2153-45fb-8cad-54ef09f4080f"}`,
		"urn:samm:io.catenax.single_level_bom_as_built:3.0.0#SingleLevelBomAsBuilt": `{"childItems":[]}`,
	}}

	id, err := newTestService(t, payloads, store, registry, m).CreateShellInDtr(context.Background(), testAsset, "srv-asset")
	require.NoError(t, err)
	require.Equal(t, testAsset.ID, id)

	require.Len(t, store.saved, 2)
	require.Len(t, registry.descriptors, 1)
	descriptor := registry.descriptors[0]
	require.Len(t, descriptor.SubmodelDescriptors, 2)
	for _, sd := range descriptor.SubmodelDescriptors {
		require.Contains(t, store.saved, sd.Id)
	}
	require.Equal(t, 1.0, testutil.ToFloat64(m.ShellPublications.WithLabelValues(metrics.OutcomeSuccess)))
}

func TestCreateShellInDtrRegistryFailure(t *testing.T) {
	t.Parallel()

	registry := &fakeRegistry{err: &CreateShellError{Status: 500, Body: "boom"}}
	svc := newTestService(t, fakePayloads{payloads: domain.AspectPayloads{batchAspect: "{}"}}, newRecordingStore(), registry, nil)

	_, err := svc.CreateShellInDtr(context.Background(), testAsset, "srv-asset")
	require.ErrorIs(t, err, ErrShellCreationFailed)

	var shellErr *ShellCreationError
	require.ErrorAs(t, err, &shellErr)
	require.Equal(t, testAsset.ID, shellErr.AssetID)
	require.Contains(t, err.Error(), testAsset.ID)

	var registryErr *CreateShellError
	require.ErrorAs(t, err, &registryErr)
	require.Equal(t, 500, registryErr.Status)
}

func TestCreateShellInDtrSubmodelFailureSkipsRegistry(t *testing.T) {
	t.Parallel()

	store := newRecordingStore()
	store.failAt = 2
	registry := &fakeRegistry{}
	svc := newTestService(t, fakePayloads{payloads: domain.AspectPayloads{"a:1#A": "{}", "b:1#B": "{}", "c:1#C": "{}"}}, store, registry, nil)

	_, err := svc.CreateShellInDtr(context.Background(), testAsset, "srv-asset")
	require.ErrorIs(t, err, ErrShellCreationFailed)

	var partial *PartialPublicationError
	require.ErrorAs(t, err, &partial)
	require.Equal(t, "b:1#B", partial.AspectType)
	require.Len(t, partial.Created, 1)
	require.Empty(t, registry.descriptors)
}

func TestCreateShellInDtrInvalidAspectTypePublishesNothing(t *testing.T) {
	t.Parallel()

	store := newRecordingStore()
	registry := &fakeRegistry{}
	svc := newTestService(t, fakePayloads{payloads: domain.AspectPayloads{batchAspect: "{}", "urn:samm:no-short-name": "{}"}}, store, registry, nil)

	_, err := svc.CreateShellInDtr(context.Background(), testAsset, "srv-asset")
	var aspectErr *InvalidAspectTypeError
	require.ErrorAs(t, err, &aspectErr)
	require.Empty(t, store.saved)
	require.Empty(t, registry.descriptors)
}

func TestCreateShellInDtrPayloadLookupFailure(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, fakePayloads{err: common.NewInternalServerError("ASSETREPO-GETPAYLOADS-EXECSQL db down")}, newRecordingStore(), &fakeRegistry{}, nil)
	_, err := svc.CreateShellInDtr(context.Background(), testAsset, "srv-asset")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrShellCreationFailed))
	require.Equal(t, 500, common.StatusCodeOf(err))
	require.ErrorContains(t, err, testAsset.ID)
	require.ErrorContains(t, err, "ASSETREPO-GETPAYLOADS-EXECSQL")
}

func TestCreateShellInDtrWithoutPayloads(t *testing.T) {
	t.Parallel()

	registry := &fakeRegistry{}
	svc := newTestService(t, fakePayloads{payloads: domain.AspectPayloads{}}, newRecordingStore(), registry, nil)

	_, err := svc.CreateShellInDtr(context.Background(), testAsset, "srv-asset")
	require.NoError(t, err)
	require.Len(t, registry.descriptors, 1)
	require.Empty(t, registry.descriptors[0].SubmodelDescriptors)
}
