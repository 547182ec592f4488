package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, false)

	logger.Debug("hidden")
	logger.Info("converted", Field{Key: "prime", Value: 5}, Field{Key: "valuation", Value: -1})
	logger.Error("failed", Field{Key: "code", Value: "precision_insufficient"})

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `level=info msg="converted" prime=5 valuation=-1`)
	require.Contains(t, out, `level=error msg="failed" code=precision_insufficient`)
}

func TestTextLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, true)
	logger.Debug("digit expansion", Field{Key: "precision", Value: 20})
	require.True(t, strings.HasPrefix(buf.String(), `level=debug msg="digit expansion"`))
}

func TestGlobalLoggerSwap(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTextLogger(&buf, false))
	t.Cleanup(func() { SetLogger(nil) })

	Log().Info("hello")
	require.Contains(t, buf.String(), `msg="hello"`)

	SetLogger(nil)
	Log().Info("dropped")
	require.NotContains(t, buf.String(), "dropped")
}
