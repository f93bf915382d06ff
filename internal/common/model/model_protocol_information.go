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

// SecurityTypeEnum is the type of a protocol security attribute.
type SecurityTypeEnum string

// List of SecurityTypeEnum
const (
	SecurityTypeNone    SecurityTypeEnum = "NONE"
	SecurityTypeRfcTlsa SecurityTypeEnum = "RFC_TLSA"
	SecurityTypeW3cDid  SecurityTypeEnum = "W3C_DID"
)

type SecurityAttributes struct {
	Type SecurityTypeEnum `json:"type"`

	Key string `json:"key"`

	Value string `json:"value"`
}

// NoSecurity is the attribute declaring that an endpoint has no protocol level security.
func NoSecurity() SecurityAttributes {
	return SecurityAttributes{
		Type:  SecurityTypeNone,
		Key:   string(SecurityTypeNone),
		Value: string(SecurityTypeNone),
	}
}

type ProtocolInformation struct {
	Href string `json:"href"`

	EndpointProtocol string `json:"endpointProtocol,omitempty"`

	EndpointProtocolVersion []string `json:"endpointProtocolVersion,omitempty"`

	Subprotocol string `json:"subprotocol,omitempty"`

	SubprotocolBody string `json:"subprotocolBody,omitempty"`

	SubprotocolBodyEncoding string `json:"subprotocolBodyEncoding,omitempty"`

	SecurityAttributes []SecurityAttributes `json:"securityAttributes,omitempty"`
}

// AssertProtocolInformationRequired checks if the required fields are not zero-ed
func AssertProtocolInformationRequired(obj ProtocolInformation) error {
	elements := map[string]any{
		"href": obj.Href,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	for _, attr := range obj.SecurityAttributes {
		if attr.Type == "" {
			return &RequiredError{Field: "securityAttributes.type"}
		}
	}
	return nil
}
