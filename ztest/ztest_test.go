package ztest

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldSkip(t *testing.T) {
	assert.Equal(t, "reason", (&ZTest{Skip: "reason"}).ShouldSkip(""))
	assert.Equal(t, `tag "x" does not match ZTEST_TAG=""`, (&ZTest{Tag: "x"}).ShouldSkip(""))
	assert.Equal(t, "", (&ZTest{Tag: "x"}).ShouldSkip("x"))
}

func TestParse(t *testing.T) {
	z, err := Parse([]byte(`
args: [-f, "1", in]
inputs:
  - name: in
    data: "a\tb\n"
outputs:
  - name: stdout
    data: "a\n"
exitcode: 1
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"-f", "1", "in"}, z.Args)
	assert.Equal(t, "a\tb\n", *z.Inputs[0].Data)
	assert.Equal(t, 1, z.ExitCode)

	_, err = Parse([]byte("argz: []\n"))
	assert.Error(t, err)
	_, err = Parse([]byte("outputs:\n  - name: stdout\n"))
	assert.EqualError(t, err, `output "stdout": one of data or regexp is required`)
}

// upper copies each named file, or stdin when there are none, to stdout in
// upper case and exits with the number of files that could not be read.
func upper(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		b, _ := io.ReadAll(stdin)
		fmt.Fprint(stdout, strings.ToUpper(string(b)))
		return 0
	}
	var failed int
	for _, arg := range args {
		b, err := Dir("").Read(arg)
		if err != nil {
			fmt.Fprintf(stderr, "upper: %s: not found\n", arg)
			failed++
			continue
		}
		fmt.Fprint(stdout, strings.ToUpper(string(b)))
	}
	return failed
}

func strptr(s string) *string {
	return &s
}

func TestRunInProcess(t *testing.T) {
	z := &ZTest{
		Args:    []string{"in"},
		Inputs:  []File{{Name: "in", Data: strptr("abc\n")}},
		Outputs: []File{{Name: "stdout", Data: strptr("ABC\n")}},
	}
	assert.NoError(t, z.RunInProcess(upper, t.TempDir()))

	z = &ZTest{
		Inputs:  []File{{Name: "stdin", Data: strptr("xyz")}},
		Outputs: []File{{Name: "stdout", Re: "^X"}},
	}
	assert.NoError(t, z.RunInProcess(upper, t.TempDir()))
}

func TestRunInProcessMismatch(t *testing.T) {
	z := &ZTest{
		Args:    []string{"in", "missing"},
		Inputs:  []File{{Name: "in", Data: strptr("abc\n")}},
		Outputs: []File{{Name: "stdout", Data: strptr("abd\n")}},
	}
	err := z.RunInProcess(upper, t.TempDir())
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "exit status 1, expected 0")
	assert.Contains(t, msg, "stdout mismatch:")
	assert.Contains(t, msg, "-abd\n+ABC\n")
	assert.Contains(t, msg, "=== stderr ===\nupper: missing: not found\n")
}
