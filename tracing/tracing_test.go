package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")

	require.NoError(t, Init("gitsetup", "0.0.1", fname))

	ctx, span := StartSpan(context.Background(), "run")
	span.WithAttributes(map[string]string{"key": "alias.ci"})
	_, child := StartSpan(ctx, "command")
	EndSpan(child, errors.New("exit status 1"))
	EndSpan(span, nil)

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "alias.ci")
	assert.Contains(t, string(data), "exit status 1")
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]string{"k": "v"}))
	span.SetStatus(nil)
	EndSpan(nil, nil)
}
