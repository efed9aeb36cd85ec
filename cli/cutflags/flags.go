// Package cutflags turns the column-selection flags of the command into a
// cut.Mode.
package cutflags

import (
	"flag"
	"unicode/utf8"

	"github.com/brimdata/zcut/cut"
	"github.com/brimdata/zcut/cuterr"
	"github.com/brimdata/zcut/ranges"
)

// optString is a string flag that remembers whether it was given.
type optString struct {
	value string
	set   bool
}

func (o *optString) String() string {
	return o.value
}

func (o *optString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

type Flags struct {
	Mode cut.Mode

	bytes           optString
	characters      optString
	fields          optString
	delimiter       optString
	outputDelimiter optString
	whitespace      bool
	complement      bool
	onlyDelimited   bool
	zeroTerminated  bool
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.Var(&f.bytes, "b", "select only these bytes")
	fs.Var(&f.bytes, "bytes", "same as -b")
	fs.Var(&f.characters, "c", "select only these characters")
	fs.Var(&f.characters, "characters", "same as -c")
	fs.Var(&f.fields, "f", "select only these fields")
	fs.Var(&f.fields, "fields", "same as -f")
	fs.Var(&f.delimiter, "d", "use this character instead of TAB for the field delimiter")
	fs.Var(&f.delimiter, "delimiter", "same as -d")
	fs.BoolVar(&f.whitespace, "w", false, "use any run of spaces and tabs as the field delimiter")
	fs.BoolVar(&f.complement, "complement", false, "select everything except the selected bytes, characters, or fields")
	fs.BoolVar(&f.onlyDelimited, "s", false, "do not print lines not containing delimiters")
	fs.BoolVar(&f.onlyDelimited, "only-delimited", false, "same as -s")
	fs.BoolVar(&f.zeroTerminated, "z", false, "line delimiter is NUL, not newline")
	fs.BoolVar(&f.zeroTerminated, "zero-terminated", false, "same as -z")
	fs.Var(&f.outputDelimiter, "output-delimiter", "use this string as the output delimiter")
}

// Init validates the flags and resolves them into Mode.  Every error is a
// cuterr.Invalid error.
func (f *Flags) Init() error {
	kind, list, err := f.kind()
	if err != nil {
		return err
	}
	set, err := ranges.Parse(list)
	if err != nil {
		return err
	}
	if f.complement {
		set = set.Complement()
	}
	mode := cut.Mode{
		Kind:       kind,
		Ranges:     set,
		Terminator: cut.Newline,
	}
	if f.zeroTerminated {
		mode.Terminator = cut.NUL
	}
	if kind == cut.Fields {
		err = f.fieldOptions(&mode)
	} else {
		err = f.byteOptions(&mode)
	}
	if err != nil {
		return err
	}
	f.Mode = mode
	return nil
}

func (f *Flags) kind() (cut.Kind, string, error) {
	var kind cut.Kind
	var list string
	var n int
	if f.bytes.set {
		kind, list = cut.Bytes, f.bytes.value
		n++
	}
	if f.characters.set {
		kind, list = cut.Characters, f.characters.value
		n++
	}
	if f.fields.set {
		kind, list = cut.Fields, f.fields.value
		n++
	}
	switch {
	case n > 1:
		return 0, "", cuterr.ErrInvalid("expects no more than one of --fields (-f), --chars (-c) or --bytes (-b)")
	case n == 0:
		return 0, "", cuterr.ErrInvalid("expects one of --fields (-f), --chars (-c) or --bytes (-b)")
	}
	return kind, list, nil
}

func (f *Flags) byteOptions(mode *cut.Mode) error {
	switch {
	case f.delimiter.set:
		return cuterr.ErrInvalid("The '--delimiter' ('-d') option only usable if printing a sequence of fields")
	case f.whitespace:
		return cuterr.ErrInvalid("The '-w' option only usable if printing a sequence of fields")
	case f.onlyDelimited:
		return cuterr.ErrInvalid("The '--only-delimited' ('-s') option only usable if printing a sequence of fields")
	}
	if f.outputDelimiter.set {
		out := f.outputDelimiter.value
		mode.OutputDelimiter = &out
	}
	return nil
}

func (f *Flags) fieldOptions(mode *cut.Mode) error {
	mode.OnlyDelimited = f.onlyDelimited
	if f.outputDelimiter.set {
		out := f.outputDelimiter.value
		if out == "" {
			out = "\x00"
		}
		mode.OutputDelimiter = &out
	}
	if f.whitespace {
		if f.delimiter.set {
			return cuterr.ErrInvalid("Only one of --delimiter (-d) or -w option can be specified")
		}
		mode.Whitespace = true
		return nil
	}
	delim := "\t"
	if f.delimiter.set {
		delim = f.delimiter.value
		if delim == "''" {
			delim = ""
		}
		if utf8.RuneCountInString(delim) > 1 {
			return cuterr.ErrInvalid("The '--delimiter' ('-d') option expects empty or 1 character long, but was provided a value 2 characters or longer")
		}
		if delim == "" {
			delim = "\x00"
		}
	}
	mode.Delimiter = []byte(delim)
	return nil
}

// NormalizeArgs rewrites a bare "-d=" argument, which selects '=' as the
// delimiter, into a form the flag package reads the same way.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args)+1)
	for k, arg := range args {
		if arg == "--" {
			return append(out, args[k:]...)
		}
		if arg == "-d=" {
			out = append(out, "-d", "=")
			continue
		}
		out = append(out, arg)
	}
	return out
}
