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
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/model"
	jsoniter "github.com/json-iterator/go"
)

// EdcBpnHeader tells the registry which business partner submits the shell.
const EdcBpnHeader = "Edc-Bpn"

// ShellRegistry accepts shell descriptors.
type ShellRegistry interface {
	CreateShell(ctx context.Context, descriptor model.AssetAdministrationShellDescriptor) error
}

// RegistryClient creates shells through the registry HTTP API.
type RegistryClient struct {
	endpoint string
	bpn      string
	client   *http.Client
}

// NewRegistryClient creates a client for <cfg.URL><cfg.ShellDescriptorsPath>.
func NewRegistryClient(cfg common.RegistryConfig, bpn string, client *http.Client) (*RegistryClient, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("registry url must not be empty")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &RegistryClient{
		endpoint: common.JoinURL(cfg.URL, cfg.ShellDescriptorsPath),
		bpn:      bpn,
		client:   client,
	}, nil
}

// CreateShell posts the descriptor. 200 and 201 are success, every other
// status is returned as *CreateShellError.
func (c *RegistryClient) CreateShell(ctx context.Context, descriptor model.AssetAdministrationShellDescriptor) error {
	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(descriptor)
	if err != nil {
		return fmt.Errorf("encoding shell descriptor %s: %w", descriptor.Id, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.bpn != "" {
		req.Header.Set(EdcBpnHeader, c.bpn)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("registry request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return nil
	}
	return &CreateShellError{Status: resp.StatusCode, Body: common.ReadDiagnosticBody(resp.Body, 4096)}
}
