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

// Package common provides configuration management, database initialization,
// error helpers and HTTP endpoint utilities for the traceability components.
// It includes support for YAML configuration files, environment variable
// overrides, CORS setup, health endpoints and PostgreSQL connections.
// nolint:all
package common

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

// Config represents the complete configuration structure for the traceability service.
type Config struct {
	Server         ServerConfig         `mapstructure:"server" json:"server"`
	Postgres       PostgresConfig       `mapstructure:"postgres" json:"postgres"`
	CorsConfig     CorsConfig           `mapstructure:"cors" json:"cors"`
	Logging        LoggingConfig        `mapstructure:"logging" json:"logging"`
	Swagger        SwaggerConfig        `mapstructure:"swagger" json:"swagger"`
	Client         ClientConfig         `mapstructure:"client" json:"client"`
	EDC            EDCConfig            `mapstructure:"edc" json:"edc"`
	Registry       RegistryConfig       `mapstructure:"registry" json:"registry"`
	SubmodelServer SubmodelServerConfig `mapstructure:"submodelServer" json:"submodelServer"`
	Traceability   TraceabilityConfig   `mapstructure:"traceability" json:"traceability"`
	Validation     ValidationConfig     `mapstructure:"validation" json:"validation"`
}

// ServerConfig contains HTTP server configuration parameters.
type ServerConfig struct {
	Host        string `mapstructure:"host" json:"host"`               // Bind address
	Port        int    `mapstructure:"port" json:"port"`               // HTTP server port (default: 8080)
	ContextPath string `mapstructure:"contextPath" json:"contextPath"` // Base path for all endpoints
}

// PostgresConfig contains PostgreSQL database connection parameters.
// When Enabled is false the service keeps assets and payloads in memory.
type PostgresConfig struct {
	Enabled                bool   `mapstructure:"enabled" json:"enabled"`
	Host                   string `mapstructure:"host" json:"host"`
	Port                   int    `mapstructure:"port" json:"port"`
	User                   string `mapstructure:"user" json:"user"`
	Password               string `mapstructure:"password" json:"password"`
	DBName                 string `mapstructure:"dbname" json:"dbname"`
	SchemaPath             string `mapstructure:"schemaPath" json:"schemaPath"`
	MaxOpenConnections     int    `mapstructure:"maxOpenConnections" json:"maxOpenConnections"`
	MaxIdleConnections     int    `mapstructure:"maxIdleConnections" json:"maxIdleConnections"`
	ConnMaxLifetimeMinutes int    `mapstructure:"connMaxLifetimeMinutes" json:"connMaxLifetimeMinutes"`
}

// CorsConfig contains Cross-Origin Resource Sharing (CORS) policy settings.
type CorsConfig struct {
	AllowedOrigins   []string `mapstructure:"allowedOrigins" json:"allowedOrigins"`
	AllowedMethods   []string `mapstructure:"allowedMethods" json:"allowedMethods"`
	AllowedHeaders   []string `mapstructure:"allowedHeaders" json:"allowedHeaders"`
	AllowCredentials bool     `mapstructure:"allowCredentials" json:"allowCredentials"`
}

// LoggingConfig selects the zap preset ("production" or "development").
type LoggingConfig struct {
	Mode string `mapstructure:"mode" json:"mode"`
}

// SwaggerConfig contains the paths of the API documentation endpoints.
type SwaggerConfig struct {
	Enabled  bool   `mapstructure:"enabled" json:"enabled"`
	UIPath   string `mapstructure:"uiPath" json:"uiPath"`
	SpecPath string `mapstructure:"specPath" json:"specPath"`
}

// ClientConfig configures the outbound HTTP client shared by the EDC,
// registry and submodel server clients.
type ClientConfig struct {
	TimeoutSeconds int `mapstructure:"timeoutSeconds" json:"timeoutSeconds"`
}

// Timeout returns the configured client timeout.
func (c ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// EDCConfig contains the provider connector endpoints.
type EDCConfig struct {
	ProviderEdcURL          string `mapstructure:"providerEdcUrl" json:"providerEdcUrl"`                   // control plane base URL
	ProviderDataplaneEdcURL string `mapstructure:"providerDataplaneEdcUrl" json:"providerDataplaneEdcUrl"` // data plane base URL
	NegotiationPath         string `mapstructure:"negotiationPath" json:"negotiationPath"`                 // contract definition endpoint
	APIKeyHeader            string `mapstructure:"apiKeyHeader" json:"apiKeyHeader"`
	APIKey                  string `mapstructure:"apiKey" json:"apiKey"`
}

// RegistryConfig contains the Digital Twin Registry endpoint.
type RegistryConfig struct {
	URL                  string `mapstructure:"url" json:"url"`
	ShellDescriptorsPath string `mapstructure:"shellDescriptorsPath" json:"shellDescriptorsPath"`
}

// SubmodelServerConfig selects and configures the submodel store backend.
type SubmodelServerConfig struct {
	Backend string      `mapstructure:"backend" json:"backend"` // http, s3, mongo or memory
	URL     string      `mapstructure:"url" json:"url"`
	S3      S3Config    `mapstructure:"s3" json:"s3"`
	Mongo   MongoConfig `mapstructure:"mongo" json:"mongo"`
}

// S3Config contains the object storage settings of the S3 submodel store.
type S3Config struct {
	Bucket    string `mapstructure:"bucket" json:"bucket"`
	Region    string `mapstructure:"region" json:"region"`
	Endpoint  string `mapstructure:"endpoint" json:"endpoint"`
	AccessKey string `mapstructure:"accessKey" json:"accessKey"`
	SecretKey string `mapstructure:"secretKey" json:"secretKey"`
	Prefix    string `mapstructure:"prefix" json:"prefix"`
}

// MongoConfig contains the document store settings of the MongoDB submodel store.
type MongoConfig struct {
	URI        string `mapstructure:"uri" json:"uri"`
	Database   string `mapstructure:"database" json:"database"`
	Collection string `mapstructure:"collection" json:"collection"`
}

// TraceabilityConfig contains the identity of this participant and the
// visibility policy applied to published specific asset ids.
type TraceabilityConfig struct {
	BPN        string           `mapstructure:"bpn" json:"bpn"`
	Visibility VisibilityConfig `mapstructure:"visibility" json:"visibility"`
}

// VisibilityConfig maps policy names to the business partner numbers allowed
// to read specific asset ids. PublicReadable adds the PUBLIC_READABLE marker.
type VisibilityConfig struct {
	PublicReadable bool                `mapstructure:"publicReadable" json:"publicReadable"`
	Policies       map[string][]string `mapstructure:"policies" json:"policies"`
}

// ValidationConfig configures the import schema validation.
type ValidationConfig struct {
	SchemaPath string `mapstructure:"schemaPath" json:"schemaPath"` // empty uses the bundled schema
	TempDir    string `mapstructure:"tempDir" json:"tempDir"`       // empty uses os.TempDir
}

// LoadConfig loads the configuration from YAML files and environment variables.
//
// The function supports multiple configuration sources with the following precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file (if provided)
// 3. Default values (lowest priority)
//
// Environment variables use underscore notation (e.g., EDC_PROVIDEREDCURL for edc.providerEdcUrl).
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		logger.LogInfo("loading config from file", "path", configPath)
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		logger.LogInfo("no config file provided, loading from environment variables only")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	logger.LogInfo("configuration loaded successfully")
	PrintConfiguration(cfg)
	return cfg, nil
}

// setDefaults configures development defaults. The visibility policy defaults
// reproduce the business partners used by the Catena-X test environment.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.contextPath", "/api")

	v.SetDefault("postgres.enabled", false)
	v.SetDefault("postgres.host", "db")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "admin")
	v.SetDefault("postgres.password", "admin123")
	v.SetDefault("postgres.dbname", "traceability")
	v.SetDefault("postgres.schemaPath", "")
	v.SetDefault("postgres.maxOpenConnections", 50)
	v.SetDefault("postgres.maxIdleConnections", 50)
	v.SetDefault("postgres.connMaxLifetimeMinutes", 5)

	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"*"})
	v.SetDefault("cors.allowCredentials", true)

	v.SetDefault("logging.mode", "production")

	v.SetDefault("swagger.enabled", true)
	v.SetDefault("swagger.uiPath", "/swagger")
	v.SetDefault("swagger.specPath", "/api-docs/openapi.yaml")

	v.SetDefault("client.timeoutSeconds", 30)

	v.SetDefault("edc.providerEdcUrl", "http://localhost:8181")
	v.SetDefault("edc.providerDataplaneEdcUrl", "http://localhost:8185")
	v.SetDefault("edc.negotiationPath", "/management/v2/contractdefinitions")
	v.SetDefault("edc.apiKeyHeader", "X-Api-Key")
	v.SetDefault("edc.apiKey", "")

	v.SetDefault("registry.url", "http://localhost:8090")
	v.SetDefault("registry.shellDescriptorsPath", "/api/v3/shell-descriptors")

	v.SetDefault("submodelServer.backend", "http")
	v.SetDefault("submodelServer.url", "http://localhost:8095")
	v.SetDefault("submodelServer.s3.region", "eu-central-1")
	v.SetDefault("submodelServer.s3.prefix", "submodels/")
	v.SetDefault("submodelServer.mongo.database", "traceability")
	v.SetDefault("submodelServer.mongo.collection", "submodels")

	v.SetDefault("traceability.bpn", "BPNL00000003CML1")
	v.SetDefault("traceability.visibility.publicReadable", true)
	v.SetDefault("traceability.visibility.policies", map[string][]string{
		"default": {"BPNL00000003CML1", "BPNL00000003CNKC"},
	})

	v.SetDefault("validation.schemaPath", "")
	v.SetDefault("validation.tempDir", "")
}

// PrintConfiguration logs the current configuration with credentials redacted.
func PrintConfiguration(cfg *Config) {
	cfgCopy := *cfg

	if cfg.Postgres.Host != "" {
		cfgCopy.Postgres.Host = "****"
		cfgCopy.Postgres.User = "****"
		cfgCopy.Postgres.Password = "****"
	}
	if cfg.EDC.APIKey != "" {
		cfgCopy.EDC.APIKey = "****"
	}
	if cfg.SubmodelServer.S3.SecretKey != "" {
		cfgCopy.SubmodelServer.S3.AccessKey = "****"
		cfgCopy.SubmodelServer.S3.SecretKey = "****"
	}
	if cfg.SubmodelServer.Mongo.URI != "" {
		cfgCopy.SubmodelServer.Mongo.URI = "****"
	}

	configJSON, err := json.MarshalIndent(cfgCopy, "", "  ")
	if err != nil {
		logger.LogError("unable to marshal configuration to JSON", err)
		return
	}

	logger.LogInfo("loaded configuration", "config", string(configJSON))
}

// AddCors configures Cross-Origin Resource Sharing (CORS) middleware for the router.
func AddCors(r *chi.Mux, config *Config) {
	c := cors.New(cors.Options{
		AllowedOrigins:   config.CorsConfig.AllowedOrigins,
		AllowedMethods:   config.CorsConfig.AllowedMethods,
		AllowedHeaders:   config.CorsConfig.AllowedHeaders,
		AllowCredentials: config.CorsConfig.AllowCredentials,
	})
	r.Use(c.Handler)
}
