package logflags

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/brimdata/zcut/cuterr"
	"github.com/brimdata/zcut/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zcut.log")
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-log.level", "debug", "-log.path", path, "-log.filemode", "append"}))
	assert.Equal(t, zap.DebugLevel, f.Config.Level)
	assert.Equal(t, logger.FileModeAppend, f.Config.Mode)
	require.NoError(t, f.Init())
	l, err := f.Open()
	require.NoError(t, err)
	l.Debug("operand opened")
	require.NoError(t, l.Sync())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "operand opened")
}

func TestBadLevel(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	f.SetFlags(fs)
	assert.Error(t, fs.Parse([]string{"-log.level", "loud"}))
}

func TestInitDestinations(t *testing.T) {
	cases := []struct {
		args  []string
		valid bool
	}{
		{nil, true},
		{[]string{"-log.path", "/dev/null"}, true},
		{[]string{"-log.path", "stdout"}, false},
		{[]string{"-log.filemode", "rotate"}, false},
		{[]string{"-log.path", "/dev/null", "-log.filemode", "rotate"}, false},
		{[]string{"-log.path", "zcut.log", "-log.filemode", "rotate"}, true},
	}
	for _, c := range cases {
		var f Flags
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		f.SetFlags(fs)
		require.NoError(t, fs.Parse(c.args))
		err := f.Init()
		if c.valid {
			assert.NoError(t, err, "%v", c.args)
		} else {
			assert.True(t, cuterr.IsInvalid(err), "%v", c.args)
		}
	}
}
