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

package model

import (
	"github.com/aas-core-works/aas-core3.0-golang/types"
)

// NewExternalReference creates an ExternalReference holding one GlobalReference
// key per value, in the given order.
func NewExternalReference(values ...string) types.IReference {
	keys := make([]types.IKey, 0, len(values))
	for _, value := range values {
		keys = append(keys, types.NewKey(types.KeyTypesGlobalReference, value))
	}
	return types.NewReference(types.ReferenceTypesExternalReference, keys)
}

// KeyValues returns the key values of ref in order. A nil reference has no keys.
func KeyValues(ref types.IReference) []string {
	if ref == nil {
		return nil
	}
	values := make([]string, 0, len(ref.Keys()))
	for _, key := range ref.Keys() {
		values = append(values, key.Value())
	}
	return values
}
