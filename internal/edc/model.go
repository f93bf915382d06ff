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

// EdcContext is the JSON-LD namespace of the EDC management API.
const EdcContext = "https://w3id.org/edc/v0.0.1/ns/"

const (
	assetSelectorID       = "https://w3id.org/edc/v0.0.1/ns/id"
	assetSelectorOperator = "="
	assetSelectorType     = "CriterionDTO"
)

// ContractDefinitionCriterion selects the assets a contract definition applies to.
type ContractDefinitionCriterion struct {
	Type         string `json:"type"`
	OperandLeft  string `json:"operandLeft"`
	OperandRight string `json:"operandRight"`
	Operator     string `json:"operator"`
}

// ContractDefinitionRequest is the body of a contract definition creation.
type ContractDefinitionRequest struct {
	Context          map[string]string             `json:"@context"`
	ID               string                        `json:"id"`
	AccessPolicyID   string                        `json:"accessPolicyId"`
	ContractPolicyID string                        `json:"contractPolicyId"`
	Criteria         []ContractDefinitionCriterion `json:"criteria"`
}

// NewContractDefinitionRequest binds notificationAssetID to accessPolicyID
// under the given contract policy id. The definition id is the access policy id.
func NewContractDefinitionRequest(notificationAssetID string, accessPolicyID string, contractPolicyID string) ContractDefinitionRequest {
	return ContractDefinitionRequest{
		Context:          map[string]string{"edc": EdcContext},
		ID:               accessPolicyID,
		AccessPolicyID:   accessPolicyID,
		ContractPolicyID: contractPolicyID,
		Criteria: []ContractDefinitionCriterion{{
			Type:         assetSelectorType,
			OperandLeft:  assetSelectorID,
			OperandRight: notificationAssetID,
			Operator:     assetSelectorOperator,
		}},
	}
}

// Outcome classifies the control plane answer to a contract definition request.
type Outcome int

const (
	OutcomeCreated Outcome = iota + 1
	OutcomeConflict
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeConflict:
		return "conflict"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// ContractDefinitionResult is the answer of the control plane. ContractPolicyID
// is set for every outcome; it is only meaningful for OutcomeCreated.
type ContractDefinitionResult struct {
	Outcome          Outcome
	ContractPolicyID string
	Status           int
	Body             string
}
