package charm

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCommand struct {
	fields   string
	delim    string
	suppress bool
	args     []string
	ran      bool
	err      error
}

func (c *testCommand) Run(args []string) error {
	c.ran = true
	c.args = args
	return c.err
}

func testSpec(c *testCommand) *Spec {
	return &Spec{
		Name:  "cut",
		Usage: "cut [options] [file ...]",
		Short: "select columns",
		Long: `
Cut selects portions of each line.`,
		HiddenFlags:   "secret",
		RedactedFlags: "d",
		New: func(fs *flag.FlagSet) (Command, error) {
			fs.StringVar(&c.fields, "f", "", "field list")
			fs.StringVar(&c.fields, "fields", "", "field list")
			fs.StringVar(&c.delim, "d", "\t", "delimiter")
			fs.BoolVar(&c.suppress, "s", false, "suppress")
			fs.Bool("secret", false, "not shown")
			return c, nil
		},
	}
}

func TestExecInterspersed(t *testing.T) {
	c := &testCommand{}
	err := testSpec(c).Exec([]string{"a.tsv", "-f", "1,3", "-", "-s", "b.tsv"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, c.ran)
	assert.Equal(t, "1,3", c.fields)
	assert.True(t, c.suppress)
	assert.Equal(t, []string{"a.tsv", "-", "b.tsv"}, c.args)
}

func TestExecAttachedValue(t *testing.T) {
	c := &testCommand{}
	err := testSpec(c).Exec([]string{"-f2-", "-d,", "-fields=4"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "4", c.fields)
	assert.Equal(t, ",", c.delim)
}

func TestExecGroupedShortFlags(t *testing.T) {
	c := &testCommand{}
	err := testSpec(c).Exec([]string{"-sf1", "-d:", "in"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, c.suppress)
	assert.Equal(t, "1", c.fields)
	assert.Equal(t, ":", c.delim)
	assert.Equal(t, []string{"in"}, c.args)

	c = &testCommand{}
	err = testSpec(c).Exec([]string{"-sd", ",", "-f", "2"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, c.suppress)
	assert.Equal(t, ",", c.delim)
	assert.Equal(t, "2", c.fields)

	err = testSpec(&testCommand{}).Exec([]string{"-sq"}, &bytes.Buffer{})
	assert.EqualError(t, err, "flag provided but not defined: -sq (did you mean -s?)")
}

func TestExecDoubleDash(t *testing.T) {
	c := &testCommand{}
	err := testSpec(c).Exec([]string{"-f", "1", "--", "-s", "x"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, c.suppress)
	assert.Equal(t, []string{"-s", "x"}, c.args)

	c = &testCommand{}
	err = testSpec(c).Exec([]string{"-d", "--", "-f", "1"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "--", c.delim)
	assert.Equal(t, "1", c.fields)
}

func TestExecUnknownFlag(t *testing.T) {
	c := &testCommand{}
	err := testSpec(c).Exec([]string{"--feilds", "1"}, &bytes.Buffer{})
	var usage *UsageError
	require.True(t, errors.As(err, &usage))
	assert.EqualError(t, err, "flag provided but not defined: -feilds (did you mean -fields?)")
	assert.False(t, c.ran)

	err = testSpec(c).Exec([]string{"-zzzzzz"}, &bytes.Buffer{})
	assert.EqualError(t, err, "flag provided but not defined: -zzzzzz")
}

func TestExecHelp(t *testing.T) {
	c := &testCommand{}
	var out bytes.Buffer
	require.NoError(t, testSpec(c).Exec([]string{"-h"}, &out))
	assert.False(t, c.ran)
	help := out.String()
	assert.Contains(t, help, "NAME\n    cut - select columns\n")
	assert.Contains(t, help, "USAGE\n    cut [options] [file ...]\n")
	assert.Contains(t, help, "-f field list\n")
	assert.Contains(t, help, "-d delimiter\n")
	assert.NotContains(t, help, "secret")
	assert.Contains(t, help, "DESCRIPTION\n    Cut selects portions of each line.\n")
}

func TestRunNeedHelp(t *testing.T) {
	c := &testCommand{err: NeedHelp}
	var out bytes.Buffer
	require.NoError(t, testSpec(c).Exec(nil, &out))
	assert.True(t, c.ran)
	assert.Contains(t, out.String(), "OPTIONS")
}

func TestRunError(t *testing.T) {
	c := &testCommand{err: errors.New("boom")}
	assert.EqualError(t, testSpec(c).Exec(nil, &bytes.Buffer{}), "boom")
}
