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
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"regexp"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SwaggerUIConfig holds configuration for Swagger UI endpoint setup
type SwaggerUIConfig struct {
	UIPath      string // Path where Swagger UI will be served (e.g., "/api/swagger")
	SpecPath    string // Path where spec will be served (e.g., "/api/api-docs/openapi.yaml")
	SpecContent []byte // The OpenAPI spec content
	ServerURL   string // Server URL to use in OpenAPI spec (e.g., "http://localhost:8080/api")
}

var serversRegex = regexp.MustCompile(`(?ms)^servers:\s*\n((?:[ \t]*-[^\n]*\n?|[ \t]+[^\n]*\n?)*)`)

// injectServerURL replaces the servers section of the OpenAPI spec with serverURL.
func injectServerURL(specContent []byte, serverURL string) []byte {
	if serverURL == "" {
		return specContent
	}

	newServers := fmt.Sprintf("servers:\n- url: '%s'\n  description: Auto-configured server\n", serverURL)
	if serversRegex.Match(specContent) {
		return serversRegex.ReplaceAll(specContent, []byte(newServers))
	}
	return append([]byte(newServers), specContent...)
}

// AddSwaggerUI adds two endpoints:
//   - cfg.SpecPath: Serves the OpenAPI specification file
//   - cfg.UIPath + "/*": Serves the Swagger UI pointing at the spec
func AddSwaggerUI(r *chi.Mux, cfg SwaggerUIConfig) {
	specContent := injectServerURL(cfg.SpecContent, cfg.ServerURL)

	r.Get(cfg.SpecPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(specContent)
	})

	r.Get(cfg.UIPath+"/*", httpSwagger.Handler(httpSwagger.URL(cfg.SpecPath)))

	logger.LogInfo("swagger UI available", "path", cfg.UIPath+"/index.html", "spec", cfg.SpecPath)
}

// AddSwaggerUIFromFS adds Swagger UI endpoints using an embedded filesystem.
//
// Parameters:
//   - r: Chi router to add endpoints to
//   - specFS: Embedded filesystem containing the OpenAPI spec
//   - specFile: Path to the spec file within the embedded FS
//   - serverConfig: Configuration providing swagger paths and the server address
func AddSwaggerUIFromFS(r *chi.Mux, specFS embed.FS, specFile string, serverConfig *Config) error {
	content, err := fs.ReadFile(specFS, specFile)
	if err != nil {
		return err
	}

	host := serverConfig.Server.Host
	if host == "0.0.0.0" || host == "" {
		host = "localhost"
	}
	contextPath := NormalizeBasePath(serverConfig.Server.ContextPath)
	if contextPath == "/" {
		contextPath = ""
	}

	AddSwaggerUI(r, SwaggerUIConfig{
		UIPath:      contextPath + serverConfig.Swagger.UIPath,
		SpecPath:    contextPath + serverConfig.Swagger.SpecPath,
		SpecContent: content,
		ServerURL:   fmt.Sprintf("http://%s:%d%s", host, serverConfig.Server.Port, contextPath),
	})
	return nil
}
