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

package common

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common/logger"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresDSN builds the lib/pq connection string for cfg.
func PostgresDSN(cfg PostgresConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
	)
}

// InitializeDatabase opens a PostgreSQL connection pool and optionally
// loads a schema file.
//
// Parameters:
//   - cfg: Connection and pool settings
//
// Returns:
//   - *sql.DB: Configured database connection pool
//   - error: Error if connection fails or schema loading fails
//
// Example:
//
//	db, err := InitializeDatabase(cfg.Postgres)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
func InitializeDatabase(cfg PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", PostgresDSN(cfg))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.MaxOpenConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.LogInfo("postgres connection established",
		"host", cfg.Host, "port", cfg.Port, "database", cfg.DBName)

	if cfg.SchemaPath == "" {
		logger.LogInfo("no SQL schema passed, skipping schema loading")
		return db, nil
	}
	queryString, fileError := os.ReadFile(cfg.SchemaPath)
	if fileError != nil {
		_ = db.Close()
		return nil, fileError
	}

	if _, dbError := db.Exec(string(queryString)); dbError != nil {
		_ = db.Close()
		return nil, dbError
	}
	return db, nil
}
