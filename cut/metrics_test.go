package cut

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brimdata/zcut/cuterr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	mode := Mode{Kind: Fields, Ranges: mustParse(t, "2"), Delimiter: []byte(","), OnlyDelimited: true, Terminator: Newline}
	p, err := NewProcessor(mode)
	require.NoError(t, err)
	m := NewMetrics(prometheus.NewRegistry())
	p.SetMetrics(m)

	var out bytes.Buffer
	require.NoError(t, p.Process(strings.NewReader("a,b\nnone\nc,d"), &out))
	require.NoError(t, p.Process(strings.NewReader("e,f\n"), &out))
	assert.Equal(t, "b\nd\nf\n", out.String())
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Lines))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Suppressed))
	assert.Equal(t, 16.0, testutil.ToFloat64(m.BytesRead))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.BytesWritten))
}

func TestMetricsLineTooLong(t *testing.T) {
	p, err := NewProcessor(Mode{Kind: Bytes, Ranges: mustParse(t, "1"), Terminator: Newline})
	require.NoError(t, err)
	p.SetMaxLine(3)
	m := NewMetrics(nil)
	p.SetMetrics(m)

	var out bytes.Buffer
	err = p.Process(strings.NewReader("ab\nabcdef\n"), &out)
	assert.Equal(t, cuterr.IO, cuterr.KindOf(err))
	assert.Equal(t, "a\n", out.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lines))
}
