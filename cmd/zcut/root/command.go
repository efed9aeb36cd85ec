package root

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/brimdata/zcut/cli"
	"github.com/brimdata/zcut/cli/clierrors"
	"github.com/brimdata/zcut/cli/cutflags"
	"github.com/brimdata/zcut/cli/inputflags"
	"github.com/brimdata/zcut/cli/logflags"
	"github.com/brimdata/zcut/cli/outputflags"
	"github.com/brimdata/zcut/cli/statsflags"
	"github.com/brimdata/zcut/cut"
	"github.com/brimdata/zcut/cuterr"
	"github.com/brimdata/zcut/pkg/charm"
	"github.com/brimdata/zcut/pkg/ctxio"
	"github.com/brimdata/zcut/pkg/storage"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const progName = "zcut"

// Exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const long = `
zcut prints selected parts of each line of its input files to standard output.
With no file, or when file is "-", it reads standard input.  Standard input is
read at most once no matter how many times "-" appears.  Input files can also
be HTTP, HTTPS, or S3 URLs.  Input bytes are cut as they are read; with
-decompress, gzip or lz4 compressed input is decompressed first.

Exactly one of -b, -c, or -f must be given.  Each takes a LIST made up of one
range or many ranges separated by commas or spaces.  A range is one of N (the
Nth byte, character, or field, counted from 1), N- (from N to the end of
line), N-M (from N to M inclusive), or -M (from the first to M).  Ranges are
sorted and merged, so each selected part is printed once and in input order.

Characters are treated as bytes.  In field mode, fields are separated by the
-d delimiter (TAB by default) or, with -w, by runs of spaces and tabs.  Selected
fields are joined by the delimiter text found in the line unless
-output-delimiter is given.  Lines without any delimiter are printed whole
unless -s is given.

zcut exits with status 1 if any input could not be read and with status 2
if the command line is invalid.
`

type Command struct {
	cli.Flags
	cutFlags    cutflags.Flags
	inputFlags  inputflags.Flags
	outputFlags outputflags.Flags
	logFlags    logflags.Flags
	statsFlags  statsflags.Flags
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
}

func New(f *flag.FlagSet, stdin io.Reader, stdout, stderr io.Writer) *Command {
	c := &Command{stdin: stdin, stdout: stdout, stderr: stderr}
	c.SetFlags(f)
	c.cutFlags.SetFlags(f)
	c.inputFlags.SetFlags(f)
	c.outputFlags.SetFlags(f)
	c.logFlags.SetFlags(f)
	c.statsFlags.SetFlags(f)
	return c
}

// Run runs zcut with the command-line arguments args and returns its exit
// status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	spec := &charm.Spec{
		Name:        progName,
		Usage:       progName + " [options] [file ...]",
		Short:       "remove sections from each line of files",
		Long:        long,
		HiddenFlags: "cpuprofile,memprofile,log.devmode",
		New: func(f *flag.FlagSet) (charm.Command, error) {
			return New(f, stdin, stdout, stderr), nil
		},
	}
	err := spec.Exec(cutflags.NormalizeArgs(args), stderr)
	if err == nil {
		return ExitOK
	}
	var r *reported
	if errors.As(err, &r) {
		return ExitFailure
	}
	fmt.Fprint(stderr, clierrors.Format(progName, err))
	if isUsage(err) {
		fmt.Fprintf(stderr, "Try '%s -h' for more information.\n", progName)
		return ExitUsage
	}
	return ExitFailure
}

func isUsage(err error) bool {
	for _, err := range multierr.Errors(err) {
		var u *charm.UsageError
		if errors.As(err, &u) || cuterr.IsInvalid(err) {
			return true
		}
	}
	return false
}

// reported wraps failures that have already been written to stderr.
type reported struct {
	err error
}

func (r *reported) Error() string {
	return r.err.Error()
}

func (c *Command) Run(args []string) error {
	ctx, cleanup, err := c.Init(c.stdout, &c.cutFlags, &c.inputFlags, &c.outputFlags, &c.logFlags, &c.statsFlags)
	if err == cli.ErrExit {
		return nil
	}
	if err != nil {
		return err
	}
	defer cleanup()
	logger, err := c.logFlags.Open()
	if err != nil {
		return err
	}
	defer logger.Sync()
	mode := c.cutFlags.Mode
	logger.Debug("mode resolved",
		zap.Stringer("kind", mode.Kind),
		zap.Stringer("ranges", mode.Ranges),
		zap.Bool("whitespace", mode.Whitespace),
		zap.Bool("only_delimited", mode.OnlyDelimited))
	processor, err := cut.NewProcessor(mode)
	if err != nil {
		return err
	}
	processor.SetMaxLine(c.inputFlags.LineLimit())
	processor.SetMetrics(c.statsFlags.Metrics())
	if len(args) == 0 {
		args = []string{storage.StdinPath}
	}
	out, err := c.outputFlags.Open(c.stdout)
	if err != nil {
		return err
	}
	failures, err := c.cutAll(ctx, logger, processor, out, args)
	if err != nil {
		out.Abort()
		if !isBrokenPipe(err) {
			return err
		}
		logger.Debug("output closed early", zap.Error(err))
	} else if err := out.Close(); err != nil && !isBrokenPipe(err) {
		return err
	}
	if c.statsFlags.Enabled() {
		logger.Debug("run complete",
			zap.Int("operands", len(args)),
			zap.Int("failures", len(multierr.Errors(failures))))
	}
	if err := c.statsFlags.Finish(c.stderr, len(args)); err != nil {
		return err
	}
	if failures != nil {
		return &reported{failures}
	}
	return nil
}

// cutAll runs the processor over each operand in order.  Failures to open
// or read an operand are reported to stderr as they happen and returned
// together as failures; any other error, such as a failed write, stops the
// run and is returned as err.
func (c *Command) cutAll(ctx context.Context, logger *zap.Logger, p *cut.Processor, out io.Writer, paths []string) (failures, err error) {
	engine := storage.NewLocalEngine(c.stdin)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return failures, err
		}
		err := c.cut(ctx, p, engine, out, path)
		if errors.Is(err, storage.ErrStdinConsumed) {
			logger.Debug("standard input already read", zap.String("operand", path))
			continue
		}
		logger.Debug("operand done", zap.String("operand", path), zap.Error(err))
		if err == nil {
			continue
		}
		var operr *clierrors.OperandError
		if !errors.As(err, &operr) {
			return failures, err
		}
		fmt.Fprint(c.stderr, clierrors.Format(progName, err))
		failures = multierr.Append(failures, err)
	}
	return failures, nil
}

func (c *Command) cut(ctx context.Context, p *cut.Processor, engine storage.Engine, out io.Writer, path string) error {
	r, err := c.inputFlags.Open(ctx, engine, path)
	if errors.Is(err, storage.ErrStdinConsumed) {
		return err
	}
	if err != nil {
		return &clierrors.OperandError{Operand: path, Err: err}
	}
	defer r.Close()
	err = p.Process(ctxio.NewReader(ctx, r), out)
	if cuterr.KindOf(err) == cuterr.IO {
		return &clierrors.OperandError{Operand: path, Err: err}
	}
	return err
}
