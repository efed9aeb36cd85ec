package outputflags

import (
	"bufio"
	"flag"
	"io"
	"math"
	"os"

	"github.com/brimdata/zcut/cli/auto"
	"github.com/brimdata/zcut/cuterr"
	"github.com/brimdata/zcut/pkg/fs"
	"github.com/brimdata/zcut/pkg/terminal"
)

const DefaultBufSize = 64 * 1024

type Flags struct {
	BufSize    auto.Bytes
	outputFile string
	unbuffered bool
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.outputFile, "o", "", "write output to file, replacing it once the run completes")
	f.BufSize = auto.NewBytes(DefaultBufSize)
	fs.Var(&f.BufSize, "bufsize", "size of the output buffer, as '64KiB' or '1MB', etc.")
	fs.BoolVar(&f.unbuffered, "unbuffered", false, "write each line as soon as it is cut")
}

func (f *Flags) Init() error {
	if f.outputFile == "-" {
		f.outputFile = ""
	}
	if f.BufSize.Bytes == 0 || f.BufSize.Bytes > math.MaxInt32 {
		return cuterr.ErrInvalid("-bufsize: %s is out of range", f.BufSize)
	}
	return nil
}

func (f *Flags) FileName() string {
	return f.outputFile
}

// Open returns the sink for a run: the -o file if one was given and stdout
// otherwise.  Output is buffered unless -unbuffered is set or the sink is
// a terminal.
func (f *Flags) Open(stdout io.Writer) (*Writer, error) {
	w := &Writer{out: stdout}
	if f.outputFile != "" {
		r, err := fs.NewFileReplacer(f.outputFile, 0666)
		if err != nil {
			return nil, err
		}
		w.out = r
		w.replacer = r
	}
	if !f.unbuffered && !isTerminal(w.out) {
		w.buffer = bufio.NewWriterSize(w.out, int(f.BufSize.Bytes))
	}
	return w, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminalFile(f)
}

// Writer is the command's output sink.
type Writer struct {
	out      io.Writer
	buffer   *bufio.Writer
	replacer *fs.Replacer
}

func (w *Writer) Write(b []byte) (int, error) {
	if w.buffer != nil {
		return w.buffer.Write(b)
	}
	return w.out.Write(b)
}

func (w *Writer) Flush() error {
	if w.buffer != nil {
		return w.buffer.Flush()
	}
	return nil
}

// Close flushes any buffered output and, when writing to a file, moves
// the file into place.
func (w *Writer) Close() error {
	err := w.Flush()
	if w.replacer == nil {
		return err
	}
	if err != nil {
		w.replacer.Abort()
		return err
	}
	return w.replacer.Close()
}

// Abort discards output written to a file.  It has no effect on stdout.
func (w *Writer) Abort() {
	if w.replacer != nil {
		w.replacer.Abort()
	}
}
