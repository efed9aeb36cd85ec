package cut

import (
	"github.com/brimdata/zcut/pkg/skim"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the work done by a Processor.  A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Lines        prometheus.Counter
	Suppressed   prometheus.Counter
	BytesRead    prometheus.Counter
	BytesWritten prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Lines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "zcut",
			Name:      "lines_total",
			Help:      "Number of input lines processed.",
		}),
		Suppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "zcut",
			Name:      "lines_suppressed_total",
			Help:      "Number of input lines that produced no output.",
		}),
		BytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "zcut",
			Name:      "read_bytes_total",
			Help:      "Number of input bytes processed.",
		}),
		BytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "zcut",
			Name:      "written_bytes_total",
			Help:      "Number of output bytes produced.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Lines, m.Suppressed, m.BytesRead, m.BytesWritten)
	}
	return m
}

// scanned adds the lines and bytes a scanner consumed from one stream.
func (m *Metrics) scanned(stats skim.Stats) {
	if m == nil {
		return
	}
	m.Lines.Add(float64(stats.Lines))
	m.BytesRead.Add(float64(stats.Bytes))
}

func (m *Metrics) observe(out int) {
	if m == nil {
		return
	}
	if out == 0 {
		m.Suppressed.Inc()
		return
	}
	m.BytesWritten.Add(float64(out))
}
