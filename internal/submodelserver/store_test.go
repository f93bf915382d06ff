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

package submodelserver

import (
	"context"
	"testing"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/stretchr/testify/require"
)

func TestNewStoreSelectsBackend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store, closeFn, err := NewStore(ctx, common.SubmodelServerConfig{Backend: "memory"}, nil)
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, store)
	require.NoError(t, closeFn(ctx))

	store, _, err = NewStore(ctx, common.SubmodelServerConfig{URL: "http://submodelserver:8080"}, nil)
	require.NoError(t, err)
	require.IsType(t, &HTTPStore{}, store)

	_, closeFn, err = NewStore(ctx, common.SubmodelServerConfig{Backend: "ftp"}, nil)
	require.Error(t, err)
	require.NotNil(t, closeFn)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, "a", "{}"))
	require.True(t, common.IsErrConflict(store.Save(ctx, "a", "[]")))

	got, ok := store.Get("a")
	require.True(t, ok)
	require.Equal(t, "{}", got)
	require.Equal(t, 1, store.Len())
}
