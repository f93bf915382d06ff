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

package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/eclipse-tractusx/traceability-go-components/internal/assets/domain"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/stretchr/testify/require"
)

func newMockDatabase(t *testing.T) (*PostgreSQLAssetDatabase, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgreSQLAssetDatabase(db), mock
}

func TestSaveAssetUpserts(t *testing.T) {
	t.Parallel()
	repo, mock := newMockDatabase(t)

	mock.ExpectExec(`INSERT INTO "asset" .* ON CONFLICT .* DO UPDATE SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveAsset(context.Background(), domain.AssetBase{
		ID:                 "urn:uuid:1",
		IDShort:            "vehicle",
		ManufacturerID:     "BPNL00000003CML1",
		ManufacturerPartID: "MPI-1",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAssetExecFailure(t *testing.T) {
	t.Parallel()
	repo, mock := newMockDatabase(t)

	mock.ExpectExec(`INSERT INTO "asset"`).WillReturnError(errors.New("connection reset"))

	err := repo.SaveAsset(context.Background(), domain.AssetBase{ID: "urn:uuid:1"})
	require.Error(t, err)
	require.Equal(t, 500, common.StatusCodeOf(err))
	require.Contains(t, err.Error(), "ASSETREPO-SAVEASSET-EXECSQL")
}

func TestGetAssetByIDFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMockDatabase(t)

	rows := sqlmock.NewRows([]string{"id", "id_short", "manufacturer_id", "manufacturer_part_id", "attributes"}).
		AddRow("urn:uuid:1", "vehicle", "BPNL00000003CML1", "MPI-1", `{"nameAtManufacturer":"Wheel"}`)
	mock.ExpectQuery(`SELECT .* FROM "asset" WHERE`).WithArgs("urn:uuid:1").WillReturnRows(rows)

	asset, err := repo.GetAssetByID(context.Background(), "urn:uuid:1")
	require.NoError(t, err)
	require.Equal(t, "vehicle", asset.IDShort)
	require.Equal(t, "MPI-1", asset.ManufacturerPartID)
	require.Equal(t, "Wheel", asset.Attributes["nameAtManufacturer"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAssetByIDNotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMockDatabase(t)

	mock.ExpectQuery(`SELECT .* FROM "asset"`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAssetByID(context.Background(), "missing")
	require.True(t, common.IsErrNotFound(err))
}

func TestSavePayloadsReplacesInTransaction(t *testing.T) {
	t.Parallel()
	repo, mock := newMockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "submodel_payload"`).WithArgs("urn:uuid:1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO "submodel_payload"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.SavePayloads(context.Background(), "urn:uuid:1", domain.AspectPayloads{
		"urn:samm:io.catenax.batch:3.0.0#Batch":                                  `{"catenaXId":"urn:uuid:1"}`,
		"urn:samm:io.catenax.single_level_bom_as_built:3.0.0#SingleLevelBomAsBuilt": `{"childItems":[]}`,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePayloadsEmptyOnlyDeletes(t *testing.T) {
	t.Parallel()
	repo, mock := newMockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "submodel_payload"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.SavePayloads(context.Background(), "urn:uuid:1", nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePayloadsRollsBackOnInsertFailure(t *testing.T) {
	t.Parallel()
	repo, mock := newMockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "submodel_payload"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "submodel_payload"`).WillReturnError(errors.New("unique violation"))
	mock.ExpectRollback()

	err := repo.SavePayloads(context.Background(), "urn:uuid:1", domain.AspectPayloads{"a#B": "{}"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "ASSETREPO-SAVEPAYLOADS-EXECINSERT")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTypesAndPayloadsByAssetID(t *testing.T) {
	t.Parallel()
	repo, mock := newMockDatabase(t)

	rows := sqlmock.NewRows([]string{"aspect_type", "json"}).
		AddRow("urn:samm:io.catenax.batch:3.0.0#Batch", `{"a":1}`).
		AddRow("urn:samm:io.catenax.part_type_information:1.0.0#PartTypeInformation", `{"b":2}`)
	mock.ExpectQuery(`SELECT "aspect_type", "json" FROM "submodel_payload"`).
		WithArgs("urn:uuid:1").WillReturnRows(rows)

	payloads, err := repo.GetTypesAndPayloadsByAssetID(context.Background(), "urn:uuid:1")
	require.NoError(t, err)
	require.Len(t, payloads, 2)
	require.Equal(t, `{"a":1}`, payloads["urn:samm:io.catenax.batch:3.0.0#Batch"])
}

func TestGetTypesAndPayloadsByAssetIDEmpty(t *testing.T) {
	t.Parallel()
	repo, mock := newMockDatabase(t)

	mock.ExpectQuery(`FROM "submodel_payload"`).
		WillReturnRows(sqlmock.NewRows([]string{"aspect_type", "json"}))

	payloads, err := repo.GetTypesAndPayloadsByAssetID(context.Background(), "urn:uuid:1")
	require.NoError(t, err)
	require.NotNil(t, payloads)
	require.Empty(t, payloads)
}
