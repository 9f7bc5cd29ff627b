package signer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartcontractkit/smbls/bls"
)

const (
	metricsNamespace = "smbls"
	metricsSubsystem = "signer"
)

const (
	resultValid   = "valid"
	resultInvalid = "invalid"
	resultError   = "error"

	kindPublicKeys = "public_keys"
	kindSignatures = "signatures"
)

// Metrics holds the prometheus collectors of a Signer. A nil *Metrics is valid and records nothing.
type Metrics struct {
	signatures    *prometheus.CounterVec
	verifications *prometheus.CounterVec
	aggregations  *prometheus.CounterVec
}

// NewMetrics creates the signer's collectors and registers them with registerer.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	schemaLabels := []string{"curve", "group_assignment"}
	m := &Metrics{
		signatures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "signatures_total",
			Help:      "Number of messages signed.",
		}, schemaLabels),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "verifications_total",
			Help:      "Number of signature verifications by result (valid, invalid, error).",
		}, append(schemaLabels, "result")),
		aggregations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "aggregations_total",
			Help:      "Number of aggregations by kind (public_keys, signatures).",
		}, append(schemaLabels, "kind")),
	}

	for _, c := range []prometheus.Collector{m.signatures, m.verifications, m.aggregations} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) signed(schema bls.SignatureSchema) {
	if m == nil {
		return
	}
	m.signatures.WithLabelValues(schemaLabelValues(schema)...).Inc()
}

func (m *Metrics) verified(schema bls.SignatureSchema, result string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(append(schemaLabelValues(schema), result)...).Inc()
}

func (m *Metrics) aggregated(schema bls.SignatureSchema, kind string) {
	if m == nil {
		return
	}
	m.aggregations.WithLabelValues(append(schemaLabelValues(schema), kind)...).Inc()
}

func schemaLabelValues(schema bls.SignatureSchema) []string {
	return []string{schema.Curve().String(), schema.GroupAssignment().String()}
}
