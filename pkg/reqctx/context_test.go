package reqctx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestMeta(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestIDFromContext(ctx))

	_, ok := RequestMetaFromContext(ctx)
	assert.False(t, ok)

	ctx = WithRequestMeta(ctx, &RequestMeta{RequestID: "rid-1"})
	assert.Equal(t, "rid-1", RequestIDFromContext(ctx))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), custom)
	Logger(ctx).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	assert.Equal(t, slog.Default(), Logger(context.Background()))
}
