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
	"errors"
	"sort"
	"strings"

	"github.com/aas-core-works/aas-core3.0-golang/types"
	"github.com/eclipse-tractusx/traceability-go-components/internal/assets/domain"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/model"
	"github.com/google/uuid"
)

// PublicReadableMarker is the externalSubjectId key making a specific asset id
// visible to every registry reader.
const PublicReadableMarker = "PUBLIC_READABLE"

const (
	specificAssetIDManufacturerID     = "manufacturerId"
	specificAssetIDManufacturerPartID = "manufacturerPartId"

	dataplanePublicPath     = "/api/public/data/"
	endpointProtocol        = "HTTP"
	endpointProtocolVersion = "1.1"
	subprotocolDSP          = "DSP"
	subprotocolEncoding     = "plain"
)

// VisibilityPolicy decides who may read the specific asset ids of a shell.
type VisibilityPolicy struct {
	PublicReadable bool
	Policies       map[string][]string // policy name -> BPNs
}

// DefaultVisibilityPolicy is public readable and grants the two default partners.
func DefaultVisibilityPolicy() VisibilityPolicy {
	return VisibilityPolicy{
		PublicReadable: true,
		Policies: map[string][]string{
			"default": {"BPNL00000003CML1", "BPNL00000003CNKC"},
		},
	}
}

// Keys renders the externalSubjectId key values: the marker first, then the
// BPNs of all policies in policy name order without duplicates.
func (v VisibilityPolicy) Keys() []string {
	var keys []string
	seen := make(map[string]struct{})
	add := func(value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		keys = append(keys, value)
	}

	if v.PublicReadable {
		add(PublicReadableMarker)
	}
	names := make([]string, 0, len(v.Policies))
	for name := range v.Policies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, bpn := range v.Policies[name] {
			add(bpn)
		}
	}
	return keys
}

// DescriptorConfig holds the connector endpoints written into submodel descriptors.
type DescriptorConfig struct {
	DataplaneURL    string // provider data plane base URL, prefix of every endpoint href
	ControlplaneURL string // provider control plane URL, used as dspEndpoint
	Visibility      VisibilityPolicy
}

// DescriptorConfigFromConfig reads the descriptor settings from the service configuration.
func DescriptorConfigFromConfig(cfg *common.Config) DescriptorConfig {
	return DescriptorConfig{
		DataplaneURL:    cfg.EDC.ProviderDataplaneEdcURL,
		ControlplaneURL: cfg.EDC.ProviderEdcURL,
		Visibility: VisibilityPolicy{
			PublicReadable: cfg.Traceability.Visibility.PublicReadable,
			Policies:       cfg.Traceability.Visibility.Policies,
		},
	}
}

// DescriptorBuilder composes shell descriptors for published assets.
type DescriptorBuilder struct {
	cfg            DescriptorConfig
	visibilityKeys []string
}

// NewDescriptorBuilder validates cfg and creates a builder.
func NewDescriptorBuilder(cfg DescriptorConfig) (*DescriptorBuilder, error) {
	if strings.TrimSpace(cfg.DataplaneURL) == "" {
		return nil, errors.New("provider dataplane url must not be empty")
	}
	if strings.TrimSpace(cfg.ControlplaneURL) == "" {
		return nil, errors.New("provider controlplane url must not be empty")
	}
	keys := cfg.Visibility.Keys()
	if len(keys) == 0 {
		return nil, errors.New("visibility policy yields no externalSubjectId keys")
	}
	return &DescriptorBuilder{cfg: cfg, visibilityKeys: keys}, nil
}

// AspectTypeToIDShort returns the short name after '#' of an aspect type, e.g.
// "Batch" for "urn:samm:io.catenax.batch:3.0.0#Batch".
func AspectTypeToIDShort(aspectType string) (string, error) {
	parts := strings.Split(aspectType, "#")
	if len(parts) < 2 || parts[1] == "" {
		return "", &InvalidAspectTypeError{AspectType: aspectType}
	}
	return parts[1], nil
}

// SubmodelDescriptor describes one published submodel reachable through the
// provider data plane.
func (b *DescriptorBuilder) SubmodelDescriptor(aspectType string, submodelID string, submodelServerAssetID string) (model.SubmodelDescriptor, error) {
	idShort, err := AspectTypeToIDShort(aspectType)
	if err != nil {
		return model.SubmodelDescriptor{}, err
	}

	endpoint, err := model.NewEndpoint(model.InterfaceSubmodel30, model.ProtocolInformation{
		Href:                    common.JoinURL(b.cfg.DataplaneURL, dataplanePublicPath+submodelID),
		EndpointProtocol:        endpointProtocol,
		EndpointProtocolVersion: []string{endpointProtocolVersion},
		Subprotocol:             subprotocolDSP,
		SubprotocolBody:         "id=" + submodelServerAssetID + ";dspEndpoint=" + b.cfg.ControlplaneURL,
		SubprotocolBodyEncoding: subprotocolEncoding,
		SecurityAttributes:      []model.SecurityAttributes{model.NoSecurity()},
	})
	if err != nil {
		return model.SubmodelDescriptor{}, err
	}

	return model.NewSubmodelDescriptor(idShort, submodelID, model.NewExternalReference(aspectType), []model.Endpoint{endpoint})
}

// SpecificAssetIDs returns manufacturerId and manufacturerPartId of asset,
// each restricted by the visibility policy. Empty values are skipped.
func (b *DescriptorBuilder) SpecificAssetIDs(asset domain.AssetBase) []types.ISpecificAssetID {
	var ids []types.ISpecificAssetID
	for _, pair := range [][2]string{
		{specificAssetIDManufacturerID, asset.ManufacturerID},
		{specificAssetIDManufacturerPartID, asset.ManufacturerPartID},
	} {
		if pair[1] == "" {
			continue
		}
		id := types.NewSpecificAssetID(pair[0], pair[1])
		id.SetExternalSubjectID(model.NewExternalReference(b.visibilityKeys...))
		ids = append(ids, id)
	}
	return ids
}

// Build composes the shell descriptor of asset. submodelIDs maps aspect types
// to published submodel ids; descriptors are ordered by aspect type. The shell
// id is a fresh UUID on every call.
func (b *DescriptorBuilder) Build(asset domain.AssetBase, submodelIDs map[string]string, submodelServerAssetID string) (model.AssetAdministrationShellDescriptor, error) {
	aspectTypes := make([]string, 0, len(submodelIDs))
	for aspectType := range submodelIDs {
		aspectTypes = append(aspectTypes, aspectType)
	}
	sort.Strings(aspectTypes)

	descriptors := make([]model.SubmodelDescriptor, 0, len(aspectTypes))
	for _, aspectType := range aspectTypes {
		descriptor, err := b.SubmodelDescriptor(aspectType, submodelIDs[aspectType], submodelServerAssetID)
		if err != nil {
			return model.AssetAdministrationShellDescriptor{}, err
		}
		descriptors = append(descriptors, descriptor)
	}

	return model.NewAssetAdministrationShellDescriptor(
		uuid.NewString(),
		asset.ID,
		asset.IDShort,
		b.SpecificAssetIDs(asset),
		descriptors,
	)
}
