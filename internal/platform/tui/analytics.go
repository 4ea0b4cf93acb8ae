package tui

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orbit-rush/internal/sim"
)

// analyticsAcceptor is implemented by modes that emit gameplay events
// to an analytics sink.
type analyticsAcceptor interface {
	SetAnalytics(sim.AnalyticsSink)
}

// logSink records gameplay events through a structured logger. Writing
// to stderr would corrupt the alt-screen, so the sink only exists when
// ORBIT_ANALYTICS_LOG names a file to append to.
type logSink struct {
	logger *log.Logger
}

func (s *logSink) Record(event string, params map[string]any) {
	kv := make([]any, 0, len(params)*2)
	for k, v := range params {
		kv = append(kv, k, v)
	}
	s.logger.Info(event, kv...)
}

// newAnalyticsSink returns a file-backed sink, or nil when analytics
// logging is not configured.
func newAnalyticsSink() sim.AnalyticsSink {
	path := os.Getenv("ORBIT_ANALYTICS_LOG")
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	return &logSink{
		logger: log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "orbit",
		}),
	}
}
