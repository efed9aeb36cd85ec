// Package statsflags reports what a run did, either as a one-line summary
// or as a Prometheus text file for a node_exporter textfile collector.
package statsflags

import (
	"flag"
	"fmt"
	"io"

	"github.com/brimdata/zcut/cut"
	"github.com/brimdata/zcut/pkg/plural"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

type Flags struct {
	summary  bool
	textfile string
	registry *prometheus.Registry
	metrics  *cut.Metrics
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.summary, "S", false, "print a summary of lines and bytes processed to stderr")
	fs.StringVar(&f.textfile, "stats.textfile", "", "write run metrics in Prometheus text format to this file")
}

func (f *Flags) Init() error {
	f.registry = prometheus.NewRegistry()
	f.metrics = cut.NewMetrics(f.registry)
	return nil
}

// Metrics returns the counters a cut.Processor should update.
func (f *Flags) Metrics() *cut.Metrics {
	return f.metrics
}

// Summary formats the -S summary line for a run over n operands.
func (f *Flags) Summary(n int) string {
	lines := value(f.metrics.Lines)
	in := value(f.metrics.BytesRead)
	out := value(f.metrics.BytesWritten)
	return fmt.Sprintf("%d line%s (%d byte%s) read from %d input%s, %d byte%s written",
		lines, plural.Int(lines, "s"), in, plural.Int(in, "s"),
		n, plural.Int(n, "s"), out, plural.Int(out, "s"))
}

func value(c prometheus.Counter) uint64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return uint64(m.GetCounter().GetValue())
}

// Finish writes the summary to w if -S was given and the text file if
// -stats.textfile was given.
func (f *Flags) Finish(w io.Writer, n int) error {
	if f.summary {
		if _, err := fmt.Fprintln(w, f.Summary(n)); err != nil {
			return err
		}
	}
	if f.textfile != "" {
		return prometheus.WriteToTextfile(f.textfile, f.registry)
	}
	return nil
}

// Enabled reports whether -S was given.
func (f *Flags) Enabled() bool {
	return f.summary
}
