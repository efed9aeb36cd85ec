package charm

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/agnivade/levenshtein"
)

// instance represents a command that has been created but not run.
// Its options and defaults may be queried with the options method.
type instance struct {
	spec    *Spec
	command Command
	flags   *flag.FlagSet
}

func newInstance(spec *Spec) (*instance, error) {
	if spec.New == nil {
		return nil, fmt.Errorf("command '%s': New function is nil", spec.Name)
	}
	flags := flag.NewFlagSet(spec.Name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	cmd, err := spec.New(flags)
	if err != nil {
		return nil, err
	}
	return &instance{spec, cmd, flags}, nil
}

// parse parses args into the instance's flags and returns the positional
// arguments.  Flags may follow positional arguments; everything after a
// bare "--" is positional.
func (i *instance) parse(args []string) ([]string, error) {
	args = splitAttached(i.flags, args)
	var rest []string
	for {
		if err := i.flags.Parse(args); err != nil {
			return nil, i.flagError(err)
		}
		remaining := i.flags.Args()
		if len(remaining) == 0 {
			return rest, nil
		}
		if n := len(args) - len(remaining); n > 0 && args[n-1] == "--" && (n == 1 || !takesValue(i.flags, args[n-2])) {
			return append(rest, remaining...), nil
		}
		rest = append(rest, remaining[0])
		args = remaining[1:]
	}
}

const undefinedPrefix = "flag provided but not defined: -"

func (i *instance) flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return NeedHelp
	}
	msg := err.Error()
	if strings.HasPrefix(msg, undefinedPrefix) {
		if s := suggest(i.flags, strings.TrimPrefix(msg, undefinedPrefix)); s != "" {
			err = fmt.Errorf("%s (did you mean -%s?)", msg, s)
		}
	}
	return &UsageError{err}
}

// suggest returns the defined flag closest to name, if any is close enough
// to be a plausible typo.
func suggest(fs *flag.FlagSet, name string) string {
	var best string
	dist := 3
	fs.VisitAll(func(f *flag.Flag) {
		if d := levenshtein.ComputeDistance(name, f.Name); d < dist {
			best, dist = f.Name, d
		}
	})
	return best
}

// splitAttached rewrites single-letter flags written together as separate
// arguments when the whole word is not itself a flag.  A run of boolean
// letters may be grouped, and the first letter that takes a value consumes
// the rest of the word, so "-sf1" becomes "-s", "-f", "1".
func splitAttached(fs *flag.FlagSet, args []string) []string {
	var out []string
	for k := 0; k < len(args); k++ {
		arg := args[k]
		if arg == "--" {
			return append(out, args[k:]...)
		}
		if len(arg) > 2 && arg[0] == '-' && arg[1] != '-' && arg[2] != '=' {
			name := strings.SplitN(arg[1:], "=", 2)[0]
			if fs.Lookup(name) == nil {
				if split, wantsValue, ok := expandShort(fs, arg[1:]); ok {
					out = append(out, split...)
					if wantsValue && k+1 < len(args) {
						k++
						out = append(out, args[k])
					}
					continue
				}
			}
		}
		out = append(out, arg)
		if k+1 < len(args) && takesValue(fs, arg) {
			k++
			out = append(out, args[k])
		}
	}
	return out
}

// expandShort splits a group of single-letter flags.  wantsValue is true
// when the group ends in a flag whose value is the next argument.  ok is
// false if any letter is not a flag, leaving the word to be reported as is.
func expandShort(fs *flag.FlagSet, group string) (split []string, wantsValue, ok bool) {
	for k := 0; k < len(group); k++ {
		letter := group[k : k+1]
		f := fs.Lookup(letter)
		if f == nil {
			return nil, false, false
		}
		split = append(split, "-"+letter)
		if !isBool(f) {
			if rest := group[k+1:]; rest != "" {
				return append(split, rest), false, true
			}
			return split, true, true
		}
	}
	return split, false, true
}

// takesValue reports whether arg is a flag that consumes the following
// argument as its value.
func takesValue(fs *flag.FlagSet, arg string) bool {
	name := strings.TrimLeft(arg, "-")
	if name == arg || strings.Contains(name, "=") {
		return false
	}
	f := fs.Lookup(name)
	return f != nil && !isBool(f)
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// options returns a formatted slice of strings ready for printing as
// help for this instance of a command.
func (i *instance) options() []string {
	hidden := flagMap(i.spec.HiddenFlags)
	redacted := flagMap(i.spec.RedactedFlags)
	var body []string
	i.flags.VisitAll(func(f *flag.Flag) {
		if hidden[f.Name] {
			return
		}
		line := "-" + f.Name + " " + f.Usage
		if f.DefValue != "" && !redacted[f.Name] {
			line = fmt.Sprintf("%s (default \"%s\")", line, f.DefValue)
		}
		body = append(body, line)
	})
	return body
}
