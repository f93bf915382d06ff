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

package main

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const e2eImport = `{
  "assets": [{
    "assetMetaInfo": {"catenaXId": "urn:uuid:e2e-0001"},
    "submodels": [{
      "aspectType": "urn:samm:io.catenax.serial_part:3.0.0#SerialPart",
      "payload": {
        "catenaXId": "urn:uuid:e2e-0001",
        "localIdentifiers": [{"key": "manufacturerId", "value": "BPNL00000003CML1"}],
        "partTypeInformation": {"nameAtManufacturer": "Sensor", "manufacturerPartId": "MPI-1"}
      }
    }]
  }]
}`

type capturedRequest struct {
	mu     sync.Mutex
	bpn    string
	bodies []string
}

func newTestConfig(registryURL string) *common.Config {
	return &common.Config{
		Server: common.ServerConfig{ContextPath: "/api"},
		EDC: common.EDCConfig{
			ProviderEdcURL:          "https://edc.example.com",
			ProviderDataplaneEdcURL: "https://dataplane.example.com",
			NegotiationPath:         "/management/v3/contractdefinitions",
		},
		Registry:       common.RegistryConfig{URL: registryURL, ShellDescriptorsPath: "/shell-descriptors"},
		SubmodelServer: common.SubmodelServerConfig{Backend: "memory"},
		Traceability: common.TraceabilityConfig{
			BPN:        "BPNL00000003CML1",
			Visibility: common.VisibilityConfig{PublicReadable: true},
		},
	}
}

func TestImportAndPublishThroughRouter(t *testing.T) {
	t.Parallel()

	captured := &capturedRequest{}
	registry := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured.mu.Lock()
		captured.bpn = r.Header.Get("Edc-Bpn")
		captured.bodies = append(captured.bodies, string(body))
		captured.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(registry.Close)

	cfg := newTestConfig(registry.URL)
	cfg.Validation.TempDir = t.TempDir()
	app, err := buildApplication(context.Background(), cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(func() { app.close(context.Background()) })

	var upload bytes.Buffer
	mw := multipart.NewWriter(&upload)
	part, err := mw.CreateFormFile("file", "import.json")
	require.NoError(t, err)
	_, err = part.Write([]byte(e2eImport))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/assets/import", &upload)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), "urn:uuid:e2e-0001")

	req = httptest.NewRequest(http.MethodPost, "/api/assets/urn:uuid:e2e-0001/publish",
		strings.NewReader(`{"submodelServerAssetId":"srv-asset-1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	captured.mu.Lock()
	defer captured.mu.Unlock()
	require.Equal(t, "BPNL00000003CML1", captured.bpn)
	require.Len(t, captured.bodies, 1)
	require.Contains(t, captured.bodies[0], `"globalAssetId":"urn:uuid:e2e-0001"`)
	require.Contains(t, captured.bodies[0], "SerialPart")
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig("http://registry.invalid")
	app, err := buildApplication(context.Background(), cfg, prometheus.NewRegistry())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBuildApplicationRejectsUnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig("http://registry.invalid")
	cfg.SubmodelServer.Backend = "ftp"
	_, err := buildApplication(context.Background(), cfg, prometheus.NewRegistry())
	require.Error(t, err)
}
