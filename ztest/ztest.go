// Package ztest runs command-line tests described in YAML files.
//
// Each file describes one run of the command: its arguments, the files and
// standard input it reads, and the output and exit status it must produce.
// For example,
//
//	args: [-d, ",", -f, "2", in.csv]
//	inputs:
//	  - name: in.csv
//	    data: |
//	      a,b,c
//	outputs:
//	  - name: stdout
//	    data: |
//	      b
//
// Inputs are written to a temporary directory before the run.  An input
// named "stdin" is supplied as standard input instead.  Outputs named
// "stdout" and "stderr" are compared against what the command wrote there;
// any other output names a file the command is expected to create.  An
// argument equal to the name of an input or output is replaced by that
// file's path in the temporary directory.
package ztest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

// Runner runs a command in-process and returns its exit status.
type Runner func(args []string, stdin io.Reader, stdout, stderr io.Writer) int

type File struct {
	Name string  `yaml:"name"`
	Data *string `yaml:"data,omitempty"`
	// Re is a regular expression the output must match.  It is ignored
	// for inputs.
	Re string `yaml:"regexp,omitempty"`
}

type ZTest struct {
	Skip     string   `yaml:"skip,omitempty"`
	Tag      string   `yaml:"tag,omitempty"`
	Args     []string `yaml:"args,omitempty"`
	Inputs   []File   `yaml:"inputs,omitempty"`
	Outputs  []File   `yaml:"outputs,omitempty"`
	ExitCode int      `yaml:"exitcode,omitempty"`
}

// Load reads the ZTest in the YAML file at path.
func Load(path string) (*ZTest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) (*ZTest, error) {
	d := yaml.NewDecoder(bytes.NewReader(b))
	d.KnownFields(true)
	var z ZTest
	if err := d.Decode(&z); err != nil {
		return nil, err
	}
	for _, f := range z.Outputs {
		if f.Data == nil && f.Re == "" {
			return nil, fmt.Errorf("output %q: one of data or regexp is required", f.Name)
		}
	}
	return &z, nil
}

// Run runs each ZTest found in a .yaml file in dirname as a subtest of t.
// Tests with a tag run only when the ZTEST_TAG environment variable names
// that tag.
func Run(t *testing.T, dirname string, run Runner) {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join(dirname, "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatalf("no ztests found in %s", dirname)
	}
	sort.Strings(paths)
	tag := os.Getenv("ZTEST_TAG")
	for _, path := range paths {
		path := path
		name := strings.TrimSuffix(filepath.Base(path), ".yaml")
		t.Run(name, func(t *testing.T) {
			z, err := Load(path)
			if err != nil {
				t.Fatalf("%s: %s", path, err)
			}
			if reason := z.ShouldSkip(tag); reason != "" {
				t.Skip(reason)
			}
			if err := z.RunInProcess(run, t.TempDir()); err != nil {
				t.Fatalf("%s: %s", path, err)
			}
		})
	}
}

func (z *ZTest) ShouldSkip(tag string) string {
	switch {
	case z.Skip != "":
		return z.Skip
	case z.Tag != tag:
		return fmt.Sprintf("tag %q does not match ZTEST_TAG=%q", z.Tag, tag)
	}
	return ""
}

// RunInProcess runs the test using dir as its scratch directory.
func (z *ZTest) RunInProcess(run Runner, dir string) error {
	d := Dir(dir)
	var stdin io.Reader = strings.NewReader("")
	paths := make(map[string]string)
	for _, f := range z.Inputs {
		data := ""
		if f.Data != nil {
			data = *f.Data
		}
		if f.Name == "stdin" {
			stdin = strings.NewReader(data)
			continue
		}
		if err := d.Write(f.Name, []byte(data)); err != nil {
			return err
		}
		paths[f.Name] = d.Join(f.Name)
	}
	for _, f := range z.Outputs {
		if f.Name != "stdout" && f.Name != "stderr" {
			paths[f.Name] = d.Join(f.Name)
		}
	}
	args := make([]string, 0, len(z.Args))
	for _, arg := range z.Args {
		if path, ok := paths[arg]; ok {
			arg = path
		}
		args = append(args, arg)
	}
	var stdout, stderr bytes.Buffer
	code := run(args, stdin, &stdout, &stderr)
	var errs []string
	if code != z.ExitCode {
		errs = append(errs, fmt.Sprintf("exit status %d, expected %d", code, z.ExitCode))
	}
	for _, f := range z.Outputs {
		var actual string
		switch f.Name {
		case "stdout":
			actual = stdout.String()
		case "stderr":
			actual = stderr.String()
		default:
			b, err := d.Read(f.Name)
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}
			actual = string(b)
		}
		if err := f.check(actual); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		errs = append(errs, "=== stdout ===\n"+stdout.String()+"=== stderr ===\n"+stderr.String())
		return errors.New(strings.Join(errs, "\n"))
	}
	return nil
}

func (f *File) check(actual string) error {
	if f.Re != "" {
		re, err := regexp.Compile(f.Re)
		if err != nil {
			return err
		}
		if !re.MatchString(actual) {
			return fmt.Errorf("%s: %q does not match %q", f.Name, actual, f.Re)
		}
		return nil
	}
	if expected := *f.Data; expected != actual {
		return diffErr(f.Name, expected, actual)
	}
	return nil
}

func diffErr(name, expected, actual string) error {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		FromFile: "expected",
		B:        difflib.SplitLines(actual),
		ToFile:   "actual",
		Context:  5,
	})
	if err != nil {
		return err
	}
	return fmt.Errorf("%s mismatch:\n%s", name, diff)
}
