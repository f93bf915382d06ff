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

// Author: Martin Stemmer (Fraunhofer IESE), Jannik Fried (Fraunhofer IESE)

//nolint:all
package model

import (
	"github.com/aas-core-works/aas-core3.0-golang/jsonization"
	"github.com/aas-core-works/aas-core3.0-golang/types"
)

type SubmodelDescriptor struct {
	Endpoints []Endpoint `json:"endpoints"`

	IdShort string `json:"idShort,omitempty" validate:"regexp=^[a-zA-Z][a-zA-Z0-9_-]*[a-zA-Z0-9_]+$"`

	Id string `json:"id"`

	SemanticId types.IReference `json:"semanticId,omitempty"`

	Description []types.ILangStringTextType `json:"description,omitempty"`
}

// NewSubmodelDescriptor creates a submodel descriptor and checks its required fields.
func NewSubmodelDescriptor(idShort string, id string, semanticID types.IReference, endpoints []Endpoint) (SubmodelDescriptor, error) {
	descriptor := SubmodelDescriptor{
		IdShort:    idShort,
		Id:         id,
		SemanticId: semanticID,
		Endpoints:  endpoints,
	}
	if err := AssertSubmodelDescriptorRequired(descriptor); err != nil {
		return SubmodelDescriptor{}, err
	}
	return descriptor, nil
}

// AssertSubmodelDescriptorRequired checks if the required fields are not zero-ed
func AssertSubmodelDescriptorRequired(obj SubmodelDescriptor) error {
	elements := map[string]any{
		"endpoints": obj.Endpoints,
		"id":        obj.Id,
		"idShort":   obj.IdShort,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	if obj.SemanticId == nil || len(obj.SemanticId.Keys()) == 0 {
		return &RequiredError{Field: "semanticId"}
	}
	for _, el := range obj.Endpoints {
		if err := AssertEndpointRequired(el); err != nil {
			return err
		}
	}
	return nil
}

// ToJsonable converts the descriptor into a JSON-ready map, marshalling the
// AAS SDK typed fields through jsonization.
func (obj SubmodelDescriptor) ToJsonable() (map[string]any, error) {
	ret := make(map[string]any)

	var descriptions []map[string]any
	for _, desc := range obj.Description {
		desc, err := jsonization.ToJsonable(desc)
		if err != nil {
			return nil, err
		}
		descriptions = append(descriptions, desc)
	}

	if obj.SemanticId != nil {
		semanticID, err := jsonization.ToJsonable(obj.SemanticId)
		if err != nil {
			return nil, err
		}
		ret["semanticId"] = semanticID
	}

	if len(descriptions) > 0 {
		ret["description"] = descriptions
	}
	if obj.IdShort != "" {
		ret["idShort"] = obj.IdShort
	}
	ret["id"] = obj.Id
	ret["endpoints"] = obj.Endpoints
	return ret, nil
}

// MarshalJSON implements json.Marshaler through ToJsonable.
func (obj SubmodelDescriptor) MarshalJSON() ([]byte, error) {
	jsonable, err := obj.ToJsonable()
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonable)
}
