package pto

// WithMetrics attaches a MetricsRecorder (typically a
// github.com/schemawire/pto/ptometrics.Collector) to the Registry. Every
// Encode and Decode call for a registered id, and every error Encode and
// Decode raise (including NoSuchPto for an unregistered id), is reported to
// it.
//
// Without this option, metrics recording is a no-op; a Registry pays
// nothing for a feature it doesn't use.
func WithMetrics(m MetricsRecorder) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithLogger overrides the zerolog.Logger used for the Registry's non-fatal
// warnings. The default writes to stderr at warn level, mirroring the
// teacher lineage's encio.Warnings.
func WithLogger(l Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}
