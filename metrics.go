package pto

// MetricsRecorder receives counts of encode/decode calls and the errors
// they raise. It is the seam the pto/ptometrics package hooks a Prometheus
// collector into; the core codec never imports Prometheus directly (spec.md
// treats metrics as an ambient, entirely optional concern — see
// SPEC_FULL.md's AMBIENT STACK section).
type MetricsRecorder interface {
	EncodeCalled(id uint16)
	DecodeCalled(id uint16)
	ErrorRaised(kind string)
}

type noopMetrics struct{}

func (noopMetrics) EncodeCalled(uint16)  {}
func (noopMetrics) DecodeCalled(uint16)  {}
func (noopMetrics) ErrorRaised(string)   {}

func (r *Registry) recordError(kind string) {
	r.metrics.ErrorRaised(kind)
}
