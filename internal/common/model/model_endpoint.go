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

// Interface tag of a submodel endpoint following the AAS Part 2 v3.0 API.
const InterfaceSubmodel30 = "SUBMODEL-3.0"

type Endpoint struct {
	Interface string `json:"interface"`

	ProtocolInformation ProtocolInformation `json:"protocolInformation"`
}

// NewEndpoint creates an endpoint and checks its required fields.
func NewEndpoint(interfaceTag string, protocolInformation ProtocolInformation) (Endpoint, error) {
	endpoint := Endpoint{
		Interface:           interfaceTag,
		ProtocolInformation: protocolInformation,
	}
	if err := AssertEndpointRequired(endpoint); err != nil {
		return Endpoint{}, err
	}
	return endpoint, nil
}

// AssertEndpointRequired checks if the required fields are not zero-ed
func AssertEndpointRequired(obj Endpoint) error {
	elements := map[string]any{
		"interface": obj.Interface,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}

	return AssertProtocolInformationRequired(obj.ProtocolInformation)
}
