// Package ptometrics wires a pto.Registry's encode/decode/error counts into
// Prometheus, using the prometheus.NewCounterVec plus explicit Register
// pattern of nspcc-dev/neo-go's pkg/rpc/prometheus.go. The counter vectors
// are fields of each Collector, created by NewCollector.
package ptometrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements pto.MetricsRecorder, recording call and error counts
// as Prometheus counters under the "pto" namespace.
type Collector struct {
	encodeCalled *prometheus.CounterVec
	decodeCalled *prometheus.CounterVec
	errorsRaised *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics into reg.
// Passing a fresh *prometheus.Registry is safe; passing the same one twice
// returns an error from reg.Register that callers should treat as fatal
// misconfiguration, matching Prometheus client conventions.
func NewCollector(reg *prometheus.Registry) (*Collector, error) {
	c := &Collector{
		encodeCalled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pto",
			Name:      "encode_calls_total",
			Help:      "Number of calls to Encode, by protocol id.",
		}, []string{"id"}),
		decodeCalled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pto",
			Name:      "decode_calls_total",
			Help:      "Number of calls to Decode, by protocol id.",
		}, []string{"id"}),
		errorsRaised: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pto",
			Name:      "errors_total",
			Help:      "Number of errors raised by Encode/Decode, by error kind.",
		}, []string{"kind"}),
	}

	for _, c2 := range []prometheus.Collector{c.encodeCalled, c.decodeCalled, c.errorsRaised} {
		if err := reg.Register(c2); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// EncodeCalled implements pto.MetricsRecorder.
func (c *Collector) EncodeCalled(id uint16) {
	c.encodeCalled.WithLabelValues(strconv.Itoa(int(id))).Inc()
}

// DecodeCalled implements pto.MetricsRecorder.
func (c *Collector) DecodeCalled(id uint16) {
	c.decodeCalled.WithLabelValues(strconv.Itoa(int(id))).Inc()
}

// ErrorRaised implements pto.MetricsRecorder.
func (c *Collector) ErrorRaised(kind string) {
	c.errorsRaised.WithLabelValues(kind).Inc()
}
