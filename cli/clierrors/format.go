package clierrors

import (
	"strings"

	"github.com/brimdata/zcut/cuterr"
	"go.uber.org/multierr"
)

// Format returns one line per error in err, each prefixed with prog and,
// when it names an operand, the operand.  Invalid errors are shown without
// their kind.
func Format(prog string, err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	for _, err := range multierr.Errors(err) {
		b.WriteString(prog)
		b.WriteString(": ")
		b.WriteString(message(err))
		b.WriteByte('\n')
	}
	return b.String()
}

func message(err error) string {
	if e, ok := err.(*OperandError); ok {
		return e.Operand + ": " + message(e.Err)
	}
	if e, ok := err.(*cuterr.Error); ok && e.Kind == cuterr.Invalid {
		return e.Message()
	}
	return err.Error()
}

// OperandError ties a failure to the input operand that caused it.
type OperandError struct {
	Operand string
	Err     error
}

func (o *OperandError) Error() string {
	return o.Operand + ": " + o.Err.Error()
}

func (o *OperandError) Unwrap() error {
	return o.Err
}
