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

package importvalidation

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

const validDocument = `{
  "assets": [
    {
      "assetMetaInfo": {"catenaXId": "urn:uuid:254604ab-2153-45fb-8cad-54ef09f4080f"},
      "submodels": [
        {"aspectType": "urn:samm:io.catenax.batch:3.0.0#Batch", "payload": {"catenaXId": "urn:uuid:254604ab-2153-45fb-8cad-54ef09f4080f"}}
      ]
    }
  ]
}`

// two assets, three independent violations
const invalidDocument = `{
  "assets": [
    {"assetMetaInfo": {}, "submodels": []},
    {"assetMetaInfo": {"catenaXId": "urn:uuid:1"}, "submodels": [{"aspectType": "Batch", "payload": {}}]},
    {"submodels": []}
  ]
}`

func newValidator(t *testing.T, opts ...Option) (*JSONFileValidator, string) {
	t.Helper()
	dir := t.TempDir()
	v, err := NewJSONFileValidator(BundledSchema(), append([]Option{WithTempDir(dir)}, opts...)...)
	require.NoError(t, err)
	return v, dir
}

func requireDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "staging file left behind")
}

func TestValidateNilAndEmptyAreValid(t *testing.T) {
	t.Parallel()
	v, dir := newValidator(t)

	violations, err := v.Validate(nil)
	require.NoError(t, err)
	require.Empty(t, violations)

	violations, err = v.Validate(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, violations)
	requireDirEmpty(t, dir)
}

func TestValidateConformingDocument(t *testing.T) {
	t.Parallel()
	v, dir := newValidator(t)

	violations, err := v.Validate(strings.NewReader(validDocument))
	require.NoError(t, err)
	require.Empty(t, violations)
	requireDirEmpty(t, dir)
}

func TestValidateAspectTypeNamespaces(t *testing.T) {
	t.Parallel()
	v, _ := newValidator(t)

	document := func(aspectType string) string {
		return `{"assets":[{"assetMetaInfo":{"catenaXId":"urn:uuid:1"},"submodels":[{"aspectType":"` +
			aspectType + `","payload":{}}]}]}`
	}

	tests := []struct {
		aspectType string
		valid      bool
	}{
		{"urn:samm:io.catenax.batch:3.0.0#Batch", true},
		{"urn:bamm:io.catenax.batch:1.0.2#Batch", true},
		{"urn:other:io.catenax.batch:1.0.2#Batch", false},
		{"urn:bamm:io.catenax.batch:1.0.2", false},
	}
	for _, tc := range tests {
		violations, err := v.Validate(strings.NewReader(document(tc.aspectType)))
		require.NoError(t, err, tc.aspectType)
		if tc.valid {
			require.Empty(t, violations, tc.aspectType)
		} else {
			require.Len(t, violations, 1, tc.aspectType)
			require.Contains(t, violations[0], "aspectType", tc.aspectType)
		}
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	t.Parallel()
	v, dir := newValidator(t)

	violations, err := v.Validate(strings.NewReader(invalidDocument))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(violations), 3)

	joined := strings.Join(violations, "\n")
	require.Contains(t, joined, "catenaXId")
	require.Contains(t, joined, "aspectType")
	require.Contains(t, joined, "assetMetaInfo")
	requireDirEmpty(t, dir)
}

func TestValidateMalformedJSONIsAViolation(t *testing.T) {
	t.Parallel()
	v, dir := newValidator(t)

	violations, err := v.Validate(strings.NewReader(`{"assets": [`))
	require.NoError(t, err)
	require.Len(t, violations, 1)
	requireDirEmpty(t, dir)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestValidateStagingFailure(t *testing.T) {
	t.Parallel()
	v, dir := newValidator(t)

	_, err := v.Validate(failingReader{})
	require.ErrorIs(t, err, ErrStagingFailed)
	requireDirEmpty(t, dir)
}

func TestValidateMissingTempDir(t *testing.T) {
	t.Parallel()
	v, err := NewJSONFileValidator(BundledSchema(), WithTempDir("/nonexistent/staging/dir"))
	require.NoError(t, err)

	_, err = v.Validate(strings.NewReader(validDocument))
	require.ErrorIs(t, err, ErrStagingFailed)
}

func TestNewJSONFileValidatorRejectsBadSchemas(t *testing.T) {
	t.Parallel()

	_, err := NewJSONFileValidator(SchemaBytes([]byte(`{not json`)))
	require.Error(t, err)

	_, err = NewJSONFileValidator(SchemaFile("/nonexistent/schema.json"))
	require.Error(t, err)

	_, err = NewJSONFileValidator(SchemaBytes(nil))
	require.Error(t, err)

	_, err = NewJSONFileValidator(nil)
	require.Error(t, err)
}

func TestInjectedSchema(t *testing.T) {
	t.Parallel()

	v, err := NewJSONFileValidator(SchemaBytes([]byte(`{"type":"object","required":["a"]}`)), WithTempDir(t.TempDir()))
	require.NoError(t, err)

	violations, err := v.Validate(strings.NewReader(`{"b":1}`))
	require.NoError(t, err)
	require.Len(t, violations, 1)
}

func TestValidateFileHeader(t *testing.T) {
	t.Parallel()
	v, dir := newValidator(t)

	violations, err := v.ValidateFileHeader(nil)
	require.NoError(t, err)
	require.Empty(t, violations)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "import.json")
	require.NoError(t, err)
	_, err = part.Write([]byte(invalidDocument))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/assets/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	violations, err = v.ValidateFileHeader(req.MultipartForm.File["file"][0])
	require.NoError(t, err)
	require.NotEmpty(t, violations)
	requireDirEmpty(t, dir)
}

func TestValidateRecordsMetrics(t *testing.T) {
	t.Parallel()
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	v, _ := newValidator(t, WithMetrics(m))

	_, _ = v.Validate(strings.NewReader(validDocument))
	_, _ = v.Validate(strings.NewReader(invalidDocument))
	_, _ = v.Validate(failingReader{})

	require.Equal(t, 1.0, testutil.ToFloat64(m.ImportValidations.WithLabelValues(metrics.ResultValid)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ImportValidations.WithLabelValues(metrics.ResultInvalid)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ImportValidations.WithLabelValues(metrics.ResultError)))
}
