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
	"sync"

	"github.com/eclipse-tractusx/traceability-go-components/internal/assets/domain"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/model"
)

type recordingStore struct {
	mu      sync.Mutex
	saved   map[string]string
	order   []string
	failAt  int // 1-based save call that fails, 0 never
	failErr error
}

func newRecordingStore() *recordingStore {
	return &recordingStore{saved: make(map[string]string)}
}

func (s *recordingStore) Save(_ context.Context, id string, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAt > 0 && len(s.order)+1 == s.failAt {
		if s.failErr == nil {
			return errors.New("submodel server unavailable")
		}
		return s.failErr
	}
	s.saved[id] = payload
	s.order = append(s.order, id)
	return nil
}

type fakeRegistry struct {
	descriptors []model.AssetAdministrationShellDescriptor
	err         error
}

func (r *fakeRegistry) CreateShell(_ context.Context, descriptor model.AssetAdministrationShellDescriptor) error {
	if r.err != nil {
		return r.err
	}
	r.descriptors = append(r.descriptors, descriptor)
	return nil
}

type fakePayloads struct {
	payloads domain.AspectPayloads
	err      error
}

func (f fakePayloads) GetTypesAndPayloadsByAssetID(context.Context, string) (domain.AspectPayloads, error) {
	return f.payloads, f.err
}
