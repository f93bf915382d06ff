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
	"errors"
	"fmt"
)

// ErrContractDefinitionAlreadyExists is returned when the control plane
// answers 409 Conflict.
var ErrContractDefinitionAlreadyExists = errors.New("asset contract definition already exists in the EDC")

// ErrContractDefinitionCreationFailed wraps transport failures towards the control plane.
var ErrContractDefinitionCreationFailed = errors.New("failed to create EDC contract definition")

// ContractDefinitionRejectedError is a non-200, non-409 answer of the control plane.
type ContractDefinitionRejectedError struct {
	AssetID string
	Status  int
	Body    string
}

func (e *ContractDefinitionRejectedError) Error() string {
	return fmt.Sprintf("failed to create EDC contract definition for %s notification asset id: status %d: %s", e.AssetID, e.Status, e.Body)
}
