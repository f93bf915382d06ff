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

// Package main implements the traceability asset publication service.
package main

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse-tractusx/traceability-go-components/internal/api"
	"github.com/eclipse-tractusx/traceability-go-components/internal/assetimport"
	"github.com/eclipse-tractusx/traceability-go-components/internal/assets/persistence"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/logger"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/metrics"
	"github.com/eclipse-tractusx/traceability-go-components/internal/dtr"
	"github.com/eclipse-tractusx/traceability-go-components/internal/edc"
	"github.com/eclipse-tractusx/traceability-go-components/internal/importvalidation"
	"github.com/eclipse-tractusx/traceability-go-components/internal/submodelserver"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

//go:embed openapi.yaml
var openapiSpec embed.FS

const shutdownTimeout = 15 * time.Second

// application holds the wired components and the resources to release on shutdown.
type application struct {
	router   *chi.Mux
	db       *sql.DB
	closeFns []func(context.Context) error
}

func (a *application) close(ctx context.Context) {
	for _, fn := range a.closeFns {
		if err := fn(ctx); err != nil {
			logger.LogError("shutdown: releasing backend failed", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			logger.LogError("shutdown: closing database failed", err)
		}
	}
}

func newAssetRepository(cfg *common.Config) (persistence.AssetRepository, *sql.DB, error) {
	if !cfg.Postgres.Enabled {
		logger.LogWarning("postgres disabled, keeping assets in memory")
		return persistence.NewInMemoryAssetDatabase(), nil, nil
	}
	db, err := common.InitializeDatabase(cfg.Postgres)
	if err != nil {
		return nil, nil, err
	}
	return persistence.NewPostgreSQLAssetDatabase(db), db, nil
}

func buildApplication(ctx context.Context, cfg *common.Config, reg *prometheus.Registry) (*application, error) {
	app := &application{}

	m, err := metrics.New(reg)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.Client.Timeout()}

	repo, db, err := newAssetRepository(cfg)
	if err != nil {
		return nil, err
	}
	app.db = db

	store, closeStore, err := submodelserver.NewStore(ctx, cfg.SubmodelServer, httpClient)
	if err != nil {
		app.close(ctx)
		return nil, fmt.Errorf("creating submodel store: %w", err)
	}
	app.closeFns = append(app.closeFns, closeStore)

	validator, err := importvalidation.NewJSONFileValidator(
		importvalidation.SchemaFromPath(cfg.Validation.SchemaPath),
		importvalidation.WithTempDir(cfg.Validation.TempDir),
		importvalidation.WithMetrics(m),
	)
	if err != nil {
		app.close(ctx)
		return nil, err
	}

	builder, err := dtr.NewDescriptorBuilder(dtr.DescriptorConfigFromConfig(cfg))
	if err != nil {
		app.close(ctx)
		return nil, fmt.Errorf("descriptor configuration: %w", err)
	}
	registryClient, err := dtr.NewRegistryClient(cfg.Registry, cfg.Traceability.BPN, httpClient)
	if err != nil {
		app.close(ctx)
		return nil, err
	}
	shells := dtr.NewService(repo, dtr.NewSubmodelPublisher(store, m), builder, registryClient, m)

	contracts, err := edc.NewContractDefinitionService(cfg.EDC, httpClient, m)
	if err != nil {
		app.close(ctx)
		return nil, err
	}

	assets := assetimport.NewService(validator, repo, shells, cfg.Traceability.BPN)
	ctrl := api.NewTraceabilityAPIController(api.NewTraceabilityAPIService(assets, contracts))

	r := chi.NewRouter()
	common.AddCors(r, cfg)
	common.AddHealthEndpoint(r, cfg)
	common.AddMetricsEndpoint(r, cfg, reg)

	if cfg.Swagger.Enabled {
		if err := common.AddSwaggerUIFromFS(r, openapiSpec, "openapi.yaml", cfg); err != nil {
			logger.LogWarning("failed to load OpenAPI spec for Swagger UI", "error", err.Error())
		}
	}

	apiRouter := chi.NewRouter()
	for _, rt := range ctrl.Routes() {
		apiRouter.Method(rt.Method, rt.Pattern, rt.HandlerFunc)
	}
	r.Mount(common.NormalizeBasePath(cfg.Server.ContextPath), apiRouter)

	app.router = r
	return app, nil
}

func runServer(ctx context.Context, configPath string) error {
	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging.Mode); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := buildApplication(ctx, cfg, reg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.LogInfo("traceability service listening", "addr", addr, "contextPath", cfg.Server.ContextPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.LogInfo("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		app.close(shutdownCtx)
		return err
	})
	return g.Wait()
}

func main() {
	configPath := ""
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, configPath); err != nil {
		logger.LogError("server error", err)
		logger.Sync()
		os.Exit(1)
	}
}
