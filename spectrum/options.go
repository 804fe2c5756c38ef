package spectrum

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures an OpticalSpectrumManager at construction time,
// following the functional-options idiom used throughout this module
// (compare core.GraphOption in the graph library this package borrows its
// indexing shape from).
type Option func(*OpticalSpectrumManager)

// WithLogger attaches a logrus.Logger the manager uses for diagnostic-level
// tracing of allocate/release/reset calls and detected clashes. Diagnostics
// never influence control flow; passing a nil logger is equivalent to not
// calling WithLogger at all (diagnostics are discarded, never a panic).
func WithLogger(log *logrus.Logger) Option {
	return func(m *OpticalSpectrumManager) {
		if log == nil {
			log = discardLogger()
		}
		m.log = log
	}
}

// discardLogger returns a logger configured to drop everything, used when
// the caller does not supply one via WithLogger.
func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
