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

// Package metrics provides the Prometheus collectors of the publication pipeline.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome label values.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
	ResultValid     = "valid"
	ResultInvalid   = "invalid"
	ResultError     = "error"
)

// Metrics bundles the pipeline counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	SubmodelsPublished  *prometheus.CounterVec
	ShellPublications   *prometheus.CounterVec
	ContractDefinitions *prometheus.CounterVec
	ImportValidations   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		SubmodelsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "traceability",
			Name:      "submodels_published_total",
			Help:      "Submodel payloads submitted to the submodel store.",
		}, []string{"outcome"}),
		ShellPublications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "traceability",
			Name:      "shell_publications_total",
			Help:      "Shell descriptor publications to the digital twin registry.",
		}, []string{"outcome"}),
		ContractDefinitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "traceability",
			Name:      "contract_definitions_total",
			Help:      "Contract definition requests sent to the EDC control plane.",
		}, []string{"outcome"}),
		ImportValidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "traceability",
			Name:      "import_validations_total",
			Help:      "Import documents checked against the import schema.",
		}, []string{"result"}),
	}
	for _, c := range []prometheus.Collector{m.SubmodelsPublished, m.ShellPublications, m.ContractDefinitions, m.ImportValidations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// SubmodelPublished counts one submodel submission.
func (m *Metrics) SubmodelPublished(outcome string) {
	if m == nil {
		return
	}
	m.SubmodelsPublished.WithLabelValues(outcome).Inc()
}

// ShellPublished counts one shell publication attempt.
func (m *Metrics) ShellPublished(outcome string) {
	if m == nil {
		return
	}
	m.ShellPublications.WithLabelValues(outcome).Inc()
}

// ContractDefinitionSubmitted counts one contract definition request.
func (m *Metrics) ContractDefinitionSubmitted(outcome string) {
	if m == nil {
		return
	}
	m.ContractDefinitions.WithLabelValues(outcome).Inc()
}

// ImportValidated counts one validated import document.
func (m *Metrics) ImportValidated(result string) {
	if m == nil {
		return
	}
	m.ImportValidations.WithLabelValues(result).Inc()
}
