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

// Package importvalidation checks uploaded import documents against the
// import JSON schema before anything is persisted.
package importvalidation

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common/logger"
	"github.com/eclipse-tractusx/traceability-go-components/internal/common/metrics"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema_V1.json
var bundledSchema []byte

// ErrStagingFailed is returned when an upload cannot be written to the
// staging directory.
var ErrStagingFailed = errors.New("staging import document failed")

// SchemaSource provides the raw JSON schema.
type SchemaSource func() ([]byte, error)

// BundledSchema returns the schema shipped with the binary.
func BundledSchema() SchemaSource {
	return func() ([]byte, error) { return bundledSchema, nil }
}

// SchemaFile reads the schema from path.
func SchemaFile(path string) SchemaSource {
	return func() ([]byte, error) { return os.ReadFile(path) }
}

// SchemaBytes uses b as schema.
func SchemaBytes(b []byte) SchemaSource {
	return func() ([]byte, error) { return b, nil }
}

// SchemaFromPath returns SchemaFile(path), or the bundled schema if path is empty.
func SchemaFromPath(path string) SchemaSource {
	if path == "" {
		return BundledSchema()
	}
	return SchemaFile(path)
}

// Option configures a JSONFileValidator.
type Option func(*JSONFileValidator)

// WithTempDir stages uploads in dir instead of os.TempDir.
func WithTempDir(dir string) Option {
	return func(v *JSONFileValidator) { v.tempDir = dir }
}

// WithMetrics records validation results.
func WithMetrics(m *metrics.Metrics) Option {
	return func(v *JSONFileValidator) { v.metrics = m }
}

// JSONFileValidator validates import documents against a compiled schema.
// It is safe for concurrent use.
type JSONFileValidator struct {
	schema  *gojsonschema.Schema
	tempDir string
	metrics *metrics.Metrics
}

// NewJSONFileValidator loads and compiles the schema once. A missing or
// malformed schema is a configuration error.
func NewJSONFileValidator(source SchemaSource, opts ...Option) (*JSONFileValidator, error) {
	if source == nil {
		return nil, errors.New("schema source must not be nil")
	}
	raw, err := source()
	if err != nil {
		return nil, fmt.Errorf("load import schema: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("load import schema: schema is empty")
	}

	compiled, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile import schema: %w", err)
	}

	v := &JSONFileValidator{schema: compiled}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Validate returns one message per schema violation of the document read
// from r. A nil reader or empty content is valid. The document is staged in a
// temporary file which is removed before Validate returns.
func (v *JSONFileValidator) Validate(r io.Reader) ([]string, error) {
	if r == nil {
		v.metrics.ImportValidated(metrics.ResultValid)
		return nil, nil
	}

	path, size, err := v.stage(r)
	if path != "" {
		defer func() {
			if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				logger.LogError("IMPORTVALIDATION-REMOVE-TEMPFILE", rmErr, "path", path)
			}
		}()
	}
	if err != nil {
		v.metrics.ImportValidated(metrics.ResultError)
		logger.LogError("IMPORTVALIDATION-STAGE", err)
		return nil, fmt.Errorf("%w: %v", ErrStagingFailed, err)
	}
	if size == 0 {
		v.metrics.ImportValidated(metrics.ResultValid)
		return nil, nil
	}

	result, err := v.schema.Validate(gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(path)))
	if err != nil {
		// the staged file exists, so the loader can only fail on malformed JSON
		v.metrics.ImportValidated(metrics.ResultInvalid)
		return []string{"document is not valid JSON: " + err.Error()}, nil
	}

	if result.Valid() {
		v.metrics.ImportValidated(metrics.ResultValid)
		return nil, nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	v.metrics.ImportValidated(metrics.ResultInvalid)
	logger.LogDebug("import document rejected by schema", "violations", len(violations))
	return violations, nil
}

// ValidateFileHeader validates a multipart upload. A nil or empty upload is valid.
func (v *JSONFileValidator) ValidateFileHeader(fh *multipart.FileHeader) ([]string, error) {
	if fh == nil || fh.Size == 0 {
		v.metrics.ImportValidated(metrics.ResultValid)
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		v.metrics.ImportValidated(metrics.ResultError)
		return nil, fmt.Errorf("%w: %v", ErrStagingFailed, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return v.Validate(f)
}

// stage copies r into a new temp file. The returned path is set whenever a
// file was created, also on error.
func (v *JSONFileValidator) stage(r io.Reader) (string, int64, error) {
	f, err := os.CreateTemp(v.tempDir, "import-*.json")
	if err != nil {
		return "", 0, err
	}
	path := f.Name()

	size, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if copyErr != nil {
		return path, size, copyErr
	}
	if closeErr != nil {
		return path, size, closeErr
	}
	return path, size, nil
}
