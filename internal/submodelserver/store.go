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

// Package submodelserver contains the backends that receive published
// submodel payloads. Every backend stores a payload under the submodel id
// generated by the publisher.
package submodelserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
)

// Store accepts one submodel payload under a fresh id.
type Store interface {
	Save(ctx context.Context, id string, payload string) error
}

// Backend names accepted in submodelServer.backend.
const (
	BackendHTTP   = "http"
	BackendS3     = "s3"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// NewStore creates the backend selected in cfg. The returned close function
// releases backend connections and is never nil.
func NewStore(ctx context.Context, cfg common.SubmodelServerConfig, client *http.Client) (Store, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch strings.ToLower(cfg.Backend) {
	case "", BackendHTTP:
		store, err := NewHTTPStore(cfg.URL, client)
		return store, noop, err
	case BackendS3:
		store, err := NewS3Store(ctx, cfg.S3)
		return store, noop, err
	case BackendMongo:
		store, err := NewMongoStore(ctx, cfg.Mongo)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown submodel server backend %q", cfg.Backend)
	}
}
