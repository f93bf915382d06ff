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

type AssetAdministrationShellDescriptor struct {
	GlobalAssetId string `json:"globalAssetId,omitempty"`

	IdShort string `json:"idShort,omitempty"`

	Id string `json:"id"`

	SpecificAssetIds []types.ISpecificAssetID `json:"specificAssetIds,omitempty"`

	SubmodelDescriptors []SubmodelDescriptor `json:"submodelDescriptors,omitempty"`
}

// NewAssetAdministrationShellDescriptor creates a shell descriptor and checks its required fields.
func NewAssetAdministrationShellDescriptor(
	id string,
	globalAssetID string,
	idShort string,
	specificAssetIDs []types.ISpecificAssetID,
	submodelDescriptors []SubmodelDescriptor,
) (AssetAdministrationShellDescriptor, error) {
	descriptor := AssetAdministrationShellDescriptor{
		GlobalAssetId:       globalAssetID,
		IdShort:             idShort,
		Id:                  id,
		SpecificAssetIds:    specificAssetIDs,
		SubmodelDescriptors: submodelDescriptors,
	}
	if err := AssertAssetAdministrationShellDescriptorRequired(descriptor); err != nil {
		return AssetAdministrationShellDescriptor{}, err
	}
	return descriptor, nil
}

// AssertAssetAdministrationShellDescriptorRequired checks if the required fields are not zero-ed
func AssertAssetAdministrationShellDescriptorRequired(obj AssetAdministrationShellDescriptor) error {
	elements := map[string]any{
		"id":            obj.Id,
		"globalAssetId": obj.GlobalAssetId,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}

	for _, el := range obj.SpecificAssetIds {
		if el.Name() == "" {
			return &RequiredError{Field: "specificAssetIds.name"}
		}
		if el.Value() == "" {
			return &RequiredError{Field: "specificAssetIds.value"}
		}
	}

	for _, el := range obj.SubmodelDescriptors {
		if err := AssertSubmodelDescriptorRequired(el); err != nil {
			return err
		}
	}
	return nil
}

// ToJsonable converts the descriptor into a JSON-ready map, marshalling the
// AAS SDK typed fields through jsonization.
func (obj AssetAdministrationShellDescriptor) ToJsonable() (map[string]any, error) {
	ret := make(map[string]any)

	var specificAssetIDs []map[string]any
	for _, sai := range obj.SpecificAssetIds {
		sai, err := jsonization.ToJsonable(sai)
		if err != nil {
			return nil, err
		}
		specificAssetIDs = append(specificAssetIDs, sai)
	}

	var submodelDescriptors []map[string]any
	for _, smd := range obj.SubmodelDescriptors {
		jsonable, err := smd.ToJsonable()
		if err != nil {
			return nil, err
		}
		submodelDescriptors = append(submodelDescriptors, jsonable)
	}

	if obj.GlobalAssetId != "" {
		ret["globalAssetId"] = obj.GlobalAssetId
	}
	if obj.IdShort != "" {
		ret["idShort"] = obj.IdShort
	}
	ret["id"] = obj.Id
	if len(specificAssetIDs) > 0 {
		ret["specificAssetIds"] = specificAssetIDs
	}
	if len(submodelDescriptors) > 0 {
		ret["submodelDescriptors"] = submodelDescriptors
	}
	return ret, nil
}

// MarshalJSON implements json.Marshaler through ToJsonable.
func (obj AssetAdministrationShellDescriptor) MarshalJSON() ([]byte, error) {
	jsonable, err := obj.ToJsonable()
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonable)
}
