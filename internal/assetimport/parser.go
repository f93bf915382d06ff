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

package assetimport

import (
	"fmt"
	"io"
	"strings"

	"github.com/eclipse-tractusx/traceability-go-components/internal/assets/domain"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type importDocument struct {
	Assets []importAsset `json:"assets"`
}

type importAsset struct {
	AssetMetaInfo struct {
		CatenaXID string `json:"catenaXId"`
	} `json:"assetMetaInfo"`
	Submodels []importSubmodel `json:"submodels"`
}

type importSubmodel struct {
	AspectType string              `json:"aspectType"`
	Payload    jsoniter.RawMessage `json:"payload"`
}

// the parts of aspect payloads that identify the manufacturer
type identifyingPayload struct {
	PartTypeInformation *struct {
		NameAtManufacturer string `json:"nameAtManufacturer"`
		ManufacturerPartID string `json:"manufacturerPartId"`
		Classification     string `json:"classification"`
	} `json:"partTypeInformation"`
	LocalIdentifiers []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"localIdentifiers"`
}

// ImportedAsset is one asset of an import document with its aspect payloads.
type ImportedAsset struct {
	Asset    domain.AssetBase
	Payloads domain.AspectPayloads
}

// Parse reads an import document. Manufacturer data is taken from the
// partTypeInformation and localIdentifiers of the payloads; ownBPN is used
// when no manufacturerId is given. Assets appear in document order, a repeated
// catenaXId replaces the earlier entry.
func Parse(r io.Reader, ownBPN string) ([]ImportedAsset, error) {
	var doc importDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, common.NewErrBadRequest("import document is not valid JSON: " + err.Error())
	}

	var result []ImportedAsset
	index := make(map[string]int)
	for i, a := range doc.Assets {
		id := strings.TrimSpace(a.AssetMetaInfo.CatenaXID)
		if id == "" {
			return nil, common.NewErrBadRequest(fmt.Sprintf("asset %d has no catenaXId", i))
		}
		imported := ImportedAsset{
			Asset:    domain.AssetBase{ID: id, Attributes: map[string]string{}},
			Payloads: make(domain.AspectPayloads, len(a.Submodels)),
		}
		for _, sm := range a.Submodels {
			if sm.AspectType == "" {
				return nil, common.NewErrBadRequest(fmt.Sprintf("asset %s has a submodel without aspectType", id))
			}
			imported.Payloads[sm.AspectType] = string(sm.Payload)
			applyIdentifiers(&imported.Asset, sm.Payload)
		}
		if imported.Asset.ManufacturerID == "" {
			imported.Asset.ManufacturerID = ownBPN
		}
		if imported.Asset.IDShort == "" {
			imported.Asset.IDShort = id
		}

		if pos, ok := index[id]; ok {
			result[pos] = imported
			continue
		}
		index[id] = len(result)
		result = append(result, imported)
	}
	return result, nil
}

func applyIdentifiers(asset *domain.AssetBase, payload []byte) {
	var p identifyingPayload
	if len(payload) == 0 || json.Unmarshal(payload, &p) != nil {
		return
	}
	if info := p.PartTypeInformation; info != nil {
		setIfEmpty(&asset.IDShort, info.NameAtManufacturer)
		setIfEmpty(&asset.ManufacturerPartID, info.ManufacturerPartID)
		if info.NameAtManufacturer != "" {
			asset.Attributes["nameAtManufacturer"] = info.NameAtManufacturer
		}
		if info.Classification != "" {
			asset.Attributes["classification"] = info.Classification
		}
	}
	for _, li := range p.LocalIdentifiers {
		switch li.Key {
		case "manufacturerId":
			setIfEmpty(&asset.ManufacturerID, li.Value)
		case "manufacturerPartId":
			setIfEmpty(&asset.ManufacturerPartID, li.Value)
		case "van", "batchId", "partInstanceId":
			asset.Attributes[li.Key] = li.Value
		}
	}
}

func setIfEmpty(target *string, value string) {
	if *target == "" && value != "" {
		*target = value
	}
}
