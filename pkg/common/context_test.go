package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichContext(t *testing.T) {
	ctx := EnrichContext(context.Background())

	id, ok := GetRequestID(ctx)
	require.True(t, ok)
	assert.Len(t, id, 36)

	_, ok = GetStartTime(ctx)
	assert.True(t, ok)

	again := EnrichContext(ctx)
	sameID, _ := GetRequestID(again)
	assert.Equal(t, id, sameID)
}

func TestEnrichContextKeepsCallerRequestID(t *testing.T) {
	ctx := EnrichContext(WithRequestID(context.Background(), "req-42"))
	id, _ := GetRequestID(ctx)
	assert.Equal(t, "req-42", id)
}

func TestExtractMetadata(t *testing.T) {
	assert.Equal(t, ContextMetadata{}, ExtractMetadata(context.Background()))

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithTraceID(ctx, "trace-1")
	ctx = WithStartTime(ctx, time.Now().Add(-time.Second))

	meta := ExtractMetadata(ctx)
	assert.Equal(t, "req-1", meta.RequestID)
	assert.Equal(t, "trace-1", meta.TraceID)
	assert.GreaterOrEqual(t, meta.Duration, time.Second)
}
