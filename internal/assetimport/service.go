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

// Package assetimport ingests import documents and publishes imported assets.
package assetimport

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/eclipse-tractusx/traceability-go-components/internal/assets/domain"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/logger"
)

// Validator checks an uploaded document against the import schema.
type Validator interface {
	ValidateFileHeader(fh *multipart.FileHeader) ([]string, error)
}

// Repository stores imported assets and their payloads.
type Repository interface {
	SaveAsset(ctx context.Context, asset domain.AssetBase) error
	GetAssetByID(ctx context.Context, assetID string) (domain.AssetBase, error)
	SavePayloads(ctx context.Context, assetID string, payloads domain.AspectPayloads) error
}

// ShellCreator publishes an asset to the digital twin registry.
type ShellCreator interface {
	CreateShellInDtr(ctx context.Context, asset domain.AssetBase, submodelServerAssetID string) (string, error)
}

// ValidationError lists the schema violations of a rejected upload.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("import document violates the import schema (%d violations): %s",
		len(e.Violations), strings.Join(e.Violations, "; "))
}

// Report summarizes a successful import.
type Report struct {
	AssetIDs []string `json:"assetIds"`
}

// Service imports documents and publishes the stored assets.
type Service struct {
	validator Validator
	repo      Repository
	shells    ShellCreator
	ownBPN    string
}

func NewService(validator Validator, repo Repository, shells ShellCreator, ownBPN string) *Service {
	return &Service{validator: validator, repo: repo, shells: shells, ownBPN: ownBPN}
}

// Import validates the upload, then stores every asset with its payloads.
// Schema violations are returned as *ValidationError and nothing is stored.
func (s *Service) Import(ctx context.Context, fh *multipart.FileHeader) (Report, error) {
	if fh == nil || fh.Size == 0 {
		return Report{}, common.NewErrBadRequest("import file is empty")
	}

	violations, err := s.validator.ValidateFileHeader(fh)
	if err != nil {
		return Report{}, err
	}
	if len(violations) > 0 {
		return Report{}, &ValidationError{Violations: violations}
	}

	f, err := fh.Open()
	if err != nil {
		return Report{}, common.NewInternalServerError("ASSETIMPORT-IMPORT-OPENFILE " + err.Error())
	}
	defer func() {
		_ = f.Close()
	}()

	assets, err := Parse(f, s.ownBPN)
	if err != nil {
		return Report{}, err
	}

	report := Report{AssetIDs: make([]string, 0, len(assets))}
	for _, imported := range assets {
		if err := s.repo.SaveAsset(ctx, imported.Asset); err != nil {
			return report, err
		}
		if err := s.repo.SavePayloads(ctx, imported.Asset.ID, imported.Payloads); err != nil {
			return report, err
		}
		report.AssetIDs = append(report.AssetIDs, imported.Asset.ID)
	}
	logger.LogInfo("imported assets", "file", fh.Filename, "assets", len(report.AssetIDs))
	return report, nil
}

// Publish creates the shell of a stored asset in the digital twin registry.
func (s *Service) Publish(ctx context.Context, assetID string, submodelServerAssetID string) (string, error) {
	if strings.TrimSpace(submodelServerAssetID) == "" {
		return "", common.NewErrBadRequest("submodelServerAssetId must not be empty")
	}
	asset, err := s.repo.GetAssetByID(ctx, assetID)
	if err != nil {
		return "", err
	}
	return s.shells.CreateShellInDtr(ctx, asset, submodelServerAssetID)
}
