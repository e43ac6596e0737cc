package logx_test

import (
	"bytes"
	"errors"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"tradevalues/pkg/logx"
)

func TestNewJSON(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	logger := logx.New(&buf, "warn", "json")

	logger.Info("dropped")
	logger.Warn("kept", logx.Error(errors.New("boom")))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	rq.Len(lines, 1)

	var entry map[string]any

	rq.NoError(jsoniter.Unmarshal(lines[0], &entry))
	rq.Equal("kept", entry["msg"])
	rq.Equal("boom", entry["err"])
}

func TestNewConsoleFallsBackToInfo(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	logger := logx.New(&buf, "not-a-level", "console")

	logger.Debug("hidden")
	logger.Info("shown")

	rq.NotContains(buf.String(), "hidden")
	rq.Contains(buf.String(), "shown")
}
