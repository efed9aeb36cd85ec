// Package charm is minimalist CLI framework inspired by cobra and urfave/cli.
package charm

import (
	"errors"
	"flag"
	"io"
)

// NeedHelp may be returned by a Command's Run method to have the help for
// the command displayed instead of an error.
var NeedHelp = errors.New("help")

type Constructor func(*flag.FlagSet) (Command, error)

type Command interface {
	Run([]string) error
}

type Spec struct {
	Name  string
	Usage string
	Short string
	Long  string
	New   Constructor
	// Hidden flags (comma-separated) marks these flags as hidden.
	HiddenFlags string
	// Redacted flags (comma-separated) marks these flags as redacted,
	// where a flag is shown (if not hidden) but its default value is hidden.
	RedactedFlags string
}

// UsageError is returned by Exec when the command line could not be
// parsed.  The command was not run.
type UsageError struct {
	Err error
}

func (u *UsageError) Error() string {
	return u.Err.Error()
}

func (u *UsageError) Unwrap() error {
	return u.Err
}

// Exec creates the command described by s, parses args into its flags, and
// runs it with the remaining arguments.  If -h or -help appears among the
// flags, help is written to w and the command is not run.
func (s *Spec) Exec(args []string, w io.Writer) error {
	inst, err := newInstance(s)
	if err != nil {
		return err
	}
	rest, err := inst.parse(args)
	if err == nil {
		err = inst.command.Run(rest)
	}
	if err == NeedHelp {
		return displayHelp(w, inst)
	}
	return err
}
