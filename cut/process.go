package cut

import (
	"io"

	"github.com/brimdata/zcut/cuterr"
	"github.com/brimdata/zcut/pkg/skim"
)

const ReadSize = 64 * 1024

// Processor reads terminator-delimited lines from a stream, hands each
// line to an Extractor, and writes the result.  A Processor is built once
// per run and may be reused for any number of streams.
type Processor struct {
	extractor Extractor
	term      byte
	maxLine   int
	metrics   *Metrics
	buffer    []byte
	out       []byte
}

func NewProcessor(mode Mode) (*Processor, error) {
	extractor, err := NewExtractor(mode)
	if err != nil {
		return nil, err
	}
	return &Processor{
		extractor: extractor,
		term:      mode.Terminator,
		buffer:    make([]byte, ReadSize),
	}, nil
}

// SetMaxLine limits the length of a single line.  Zero means no limit.
func (p *Processor) SetMaxLine(n int) {
	p.maxLine = n
}

func (p *Processor) SetMetrics(m *Metrics) {
	p.metrics = m
}

// Process consumes r to exhaustion.  A failure reading r is returned as a
// cuterr.IO error and leaves the processor usable for the next stream; a
// failure writing w is returned as is.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	scanner := skim.NewScanner(r, p.buffer, p.maxLine, p.term)
	defer func() {
		p.metrics.scanned(scanner.Stats)
		p.keep(scanner)
	}()
	for {
		line, err := scanner.ScanLine()
		if err != nil {
			return cuterr.E(cuterr.IO, err)
		}
		if line == nil {
			return nil
		}
		p.out = p.extractor.Extract(p.out[:0], line)
		p.metrics.observe(len(p.out))
		if len(p.out) == 0 {
			continue
		}
		if _, err := w.Write(p.out); err != nil {
			return err
		}
	}
}

// keep holds on to a scanner's buffer if it grew so the next stream
// starts with it.
func (p *Processor) keep(s *skim.Scanner) {
	if b := s.Buffer(); len(b) > len(p.buffer) {
		p.buffer = b
	}
}

// Process extracts the columns described by mode from every line of r and
// writes them to w.
func Process(r io.Reader, w io.Writer, mode Mode) error {
	p, err := NewProcessor(mode)
	if err != nil {
		return err
	}
	return p.Process(r, w)
}
