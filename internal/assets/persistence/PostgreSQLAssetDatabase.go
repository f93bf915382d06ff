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

// Package persistence stores imported assets and their submodel payloads.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the postgres dialect
	"github.com/eclipse-tractusx/traceability-go-components/internal/assets/domain"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/logger"
	jsoniter "github.com/json-iterator/go"
)

// PostgreSQLAssetDatabase keeps assets and submodel payloads in PostgreSQL.
type PostgreSQLAssetDatabase struct {
	db      *sql.DB
	dialect goqu.DialectWrapper
}

// NewPostgreSQLAssetDatabase wraps an open connection pool.
func NewPostgreSQLAssetDatabase(db *sql.DB) *PostgreSQLAssetDatabase {
	return &PostgreSQLAssetDatabase{db: db, dialect: goqu.Dialect("postgres")}
}

// SaveAsset inserts the asset or replaces the stored record with the same id.
func (p *PostgreSQLAssetDatabase) SaveAsset(ctx context.Context, asset domain.AssetBase) error {
	attributes, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(asset.Attributes)
	if err != nil {
		return common.NewInternalServerError("ASSETREPO-SAVEASSET-JSON " + err.Error())
	}

	query, args, err := p.dialect.Insert(tableAsset).
		Rows(goqu.Record{
			colID:                 asset.ID,
			colIDShort:            asset.IDShort,
			colManufacturerID:     asset.ManufacturerID,
			colManufacturerPartID: asset.ManufacturerPartID,
			colAttributes:         string(attributes),
		}).
		OnConflict(goqu.DoUpdate(colID, goqu.Record{
			colIDShort:            goqu.L("EXCLUDED." + colIDShort),
			colManufacturerID:     goqu.L("EXCLUDED." + colManufacturerID),
			colManufacturerPartID: goqu.L("EXCLUDED." + colManufacturerPartID),
			colAttributes:         goqu.L("EXCLUDED." + colAttributes),
		})).
		Prepared(true).
		ToSQL()
	if err != nil {
		return common.NewInternalServerError("ASSETREPO-SAVEASSET-BUILDSQL " + err.Error())
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		logger.LogError("ASSETREPO-SAVEASSET-EXECSQL", err, "assetId", asset.ID)
		return common.NewInternalServerError("ASSETREPO-SAVEASSET-EXECSQL " + err.Error())
	}
	return nil
}

// GetAssetByID returns the stored asset or a not found error.
func (p *PostgreSQLAssetDatabase) GetAssetByID(ctx context.Context, assetID string) (domain.AssetBase, error) {
	query, args, err := p.dialect.From(tableAsset).
		Select(colID, colIDShort, colManufacturerID, colManufacturerPartID, colAttributes).
		Where(goqu.C(colID).Eq(assetID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return domain.AssetBase{}, common.NewInternalServerError("ASSETREPO-GETASSET-BUILDSQL " + err.Error())
	}

	var asset domain.AssetBase
	var attributes sql.NullString
	err = p.db.QueryRowContext(ctx, query, args...).
		Scan(&asset.ID, &asset.IDShort, &asset.ManufacturerID, &asset.ManufacturerPartID, &attributes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AssetBase{}, common.NewErrNotFound("asset '" + assetID + "'")
		}
		return domain.AssetBase{}, common.NewInternalServerError("ASSETREPO-GETASSET-EXECSQL " + err.Error())
	}

	if attributes.Valid && attributes.String != "" && attributes.String != "null" {
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(attributes.String), &asset.Attributes); err != nil {
			return domain.AssetBase{}, common.NewInternalServerError("ASSETREPO-GETASSET-JSON " + err.Error())
		}
	}
	return asset, nil
}

// SavePayloads replaces all submodel payloads of an asset in one transaction.
func (p *PostgreSQLAssetDatabase) SavePayloads(ctx context.Context, assetID string, payloads domain.AspectPayloads) (err error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return common.NewInternalServerError("ASSETREPO-SAVEPAYLOADS-BEGIN " + err.Error())
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.LogError("ASSETREPO-SAVEPAYLOADS-ROLLBACK", rbErr, "assetId", assetID)
			}
		}
	}()

	query, args, err := p.dialect.Delete(tableSubmodelPayload).
		Where(goqu.C(colAssetID).Eq(assetID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return common.NewInternalServerError("ASSETREPO-SAVEPAYLOADS-DELETESQL " + err.Error())
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return common.NewInternalServerError("ASSETREPO-SAVEPAYLOADS-EXECDELETE " + err.Error())
	}

	if len(payloads) > 0 {
		aspectTypes := make([]string, 0, len(payloads))
		for aspectType := range payloads {
			aspectTypes = append(aspectTypes, aspectType)
		}
		sort.Strings(aspectTypes)

		rows := make([]interface{}, 0, len(aspectTypes))
		for _, aspectType := range aspectTypes {
			rows = append(rows, goqu.Record{
				colAssetID:    assetID,
				colAspectType: aspectType,
				colJSON:       payloads[aspectType],
			})
		}

		query, args, err = p.dialect.Insert(tableSubmodelPayload).Rows(rows...).Prepared(true).ToSQL()
		if err != nil {
			return common.NewInternalServerError("ASSETREPO-SAVEPAYLOADS-INSERTSQL " + err.Error())
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return common.NewInternalServerError("ASSETREPO-SAVEPAYLOADS-EXECINSERT " + err.Error())
		}
	}

	if err = tx.Commit(); err != nil {
		return common.NewInternalServerError("ASSETREPO-SAVEPAYLOADS-COMMIT " + err.Error())
	}
	return nil
}

// GetTypesAndPayloadsByAssetID returns the payloads of an asset keyed by aspect type.
// An asset without payloads yields an empty map.
func (p *PostgreSQLAssetDatabase) GetTypesAndPayloadsByAssetID(ctx context.Context, assetID string) (domain.AspectPayloads, error) {
	query, args, err := p.dialect.From(tableSubmodelPayload).
		Select(colAspectType, colJSON).
		Where(goqu.C(colAssetID).Eq(assetID)).
		Order(goqu.C(colAspectType).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, common.NewInternalServerError("ASSETREPO-GETPAYLOADS-BUILDSQL " + err.Error())
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewInternalServerError("ASSETREPO-GETPAYLOADS-EXECSQL " + err.Error())
	}
	defer func() {
		_ = rows.Close()
	}()

	payloads := make(domain.AspectPayloads)
	for rows.Next() {
		var aspectType, payload string
		if err := rows.Scan(&aspectType, &payload); err != nil {
			return nil, common.NewInternalServerError("ASSETREPO-GETPAYLOADS-SCAN " + err.Error())
		}
		payloads[aspectType] = payload
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewInternalServerError("ASSETREPO-GETPAYLOADS-ROWS " + err.Error())
	}
	return payloads, nil
}
