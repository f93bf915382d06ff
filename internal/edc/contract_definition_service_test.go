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

package edc

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/metrics"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

const (
	notificationAssetID = "qualitynotification-receive"
	accessPolicyID      = "policy-4711"
)

type capturedRequest struct {
	path   string
	apiKey string
	body   ContractDefinitionRequest
}

func newControlPlane(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.apiKey = r.Header.Get("X-Api-Key")
		raw, _ := io.ReadAll(r.Body)
		_ = jsoniter.Unmarshal(raw, &captured.body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func newService(t *testing.T, srv *httptest.Server, m *metrics.Metrics) *ContractDefinitionService {
	t.Helper()
	svc, err := NewContractDefinitionService(common.EDCConfig{
		ProviderEdcURL:  srv.URL,
		NegotiationPath: "/management/v2/contractdefinitions",
		APIKey:          "secret",
	}, srv.Client(), m)
	require.NoError(t, err)
	return svc
}

func TestCreateContractDefinitionCreated(t *testing.T) {
	t.Parallel()
	srv, captured := newControlPlane(t, http.StatusOK, `{"@id":"policy-4711"}`)

	id, err := newService(t, srv, nil).CreateContractDefinition(context.Background(), notificationAssetID, accessPolicyID)
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	require.NoError(t, err)
	require.NotEqual(t, accessPolicyID, id)

	require.Equal(t, "/management/v2/contractdefinitions", captured.path)
	require.Equal(t, "secret", captured.apiKey)
	require.Equal(t, id, captured.body.ContractPolicyID)
	require.Equal(t, accessPolicyID, captured.body.AccessPolicyID)
	require.Equal(t, accessPolicyID, captured.body.ID)
	require.Equal(t, map[string]string{"edc": EdcContext}, captured.body.Context)
	require.Equal(t, []ContractDefinitionCriterion{{
		Type:         "CriterionDTO",
		OperandLeft:  "https://w3id.org/edc/v0.0.1/ns/id",
		OperandRight: notificationAssetID,
		Operator:     "=",
	}}, captured.body.Criteria)
}

func TestContractPolicyIDsAreNeverReused(t *testing.T) {
	t.Parallel()
	srv, _ := newControlPlane(t, http.StatusOK, "")
	svc := newService(t, srv, nil)

	first, err := svc.CreateContractDefinition(context.Background(), notificationAssetID, accessPolicyID)
	require.NoError(t, err)
	second, err := svc.CreateContractDefinition(context.Background(), notificationAssetID, accessPolicyID)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestCreateContractDefinitionConflict(t *testing.T) {
	t.Parallel()
	srv, _ := newControlPlane(t, http.StatusConflict, "")

	_, err := newService(t, srv, nil).CreateContractDefinition(context.Background(), notificationAssetID, accessPolicyID)
	require.ErrorIs(t, err, ErrContractDefinitionAlreadyExists)
}

func TestCreateContractDefinitionRejected(t *testing.T) {
	t.Parallel()
	srv, _ := newControlPlane(t, http.StatusInternalServerError, "X")

	_, err := newService(t, srv, nil).CreateContractDefinition(context.Background(), notificationAssetID, accessPolicyID)
	var rejected *ContractDefinitionRejectedError
	require.ErrorAs(t, err, &rejected)
	require.Equal(t, notificationAssetID, rejected.AssetID)
	require.Equal(t, http.StatusInternalServerError, rejected.Status)
	require.Equal(t, "X", rejected.Body)
	require.Contains(t, err.Error(), notificationAssetID)
	require.False(t, errors.Is(err, ErrContractDefinitionAlreadyExists))
}

func TestCreateContractDefinitionReportsTruncatedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "1024")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("partial"))
	}))
	defer srv.Close()

	_, err := newService(t, srv, nil).CreateContractDefinition(context.Background(), notificationAssetID, accessPolicyID)
	var rejected *ContractDefinitionRejectedError
	require.ErrorAs(t, err, &rejected)
	require.Equal(t, http.StatusInternalServerError, rejected.Status)
	require.True(t, strings.HasPrefix(rejected.Body, "partial"), rejected.Body)
	require.Contains(t, rejected.Body, "response body read failed")
}

func TestCreateContractDefinitionTransportFailure(t *testing.T) {
	t.Parallel()
	srv, _ := newControlPlane(t, http.StatusOK, "")
	svc := newService(t, srv, nil)
	srv.Close()

	_, err := svc.CreateContractDefinition(context.Background(), notificationAssetID, accessPolicyID)
	require.ErrorIs(t, err, ErrContractDefinitionCreationFailed)
	require.Contains(t, err.Error(), notificationAssetID)
}

func TestSubmitReturnsTaggedResult(t *testing.T) {
	t.Parallel()
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	for _, tc := range []struct {
		status  int
		outcome Outcome
		label   string
	}{
		{http.StatusOK, OutcomeCreated, metrics.OutcomeSuccess},
		{http.StatusConflict, OutcomeConflict, metrics.OutcomeConflict},
		{http.StatusBadRequest, OutcomeRejected, metrics.OutcomeRejected},
	} {
		srv, _ := newControlPlane(t, tc.status, "body")
		result, err := newService(t, srv, m).Submit(context.Background(), notificationAssetID, accessPolicyID)
		require.NoError(t, err)
		require.Equal(t, tc.outcome, result.Outcome, tc.outcome.String())
		require.Equal(t, tc.status, result.Status)
		require.Equal(t, "body", result.Body)
		require.NotEmpty(t, result.ContractPolicyID)
		require.Equal(t, 1.0, testutil.ToFloat64(m.ContractDefinitions.WithLabelValues(tc.label)))
	}
}

func TestNewContractDefinitionServiceRequiresURL(t *testing.T) {
	t.Parallel()
	_, err := NewContractDefinitionService(common.EDCConfig{}, nil, nil)
	require.Error(t, err)
}
