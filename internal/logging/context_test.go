// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestGenerateIDs(t *testing.T) {
	cid := GenerateCorrelationID()
	if len(cid) != 8 {
		t.Errorf("correlation ID length = %d, want 8", len(cid))
	}
	if cid == GenerateCorrelationID() {
		t.Error("correlation IDs should be unique")
	}

	rid := GenerateRequestID()
	if len(rid) != 36 {
		t.Errorf("request ID length = %d, want 36", len(rid))
	}
}

func TestContextIDs(t *testing.T) {
	ctx := context.Background()
	if CorrelationIDFromContext(ctx) != "" || RequestIDFromContext(ctx) != "" {
		t.Error("empty context should carry no IDs")
	}

	ctx = ContextWithCorrelationID(ctx, "abc12345")
	ctx = ContextWithRequestID(ctx, "req-1")

	if got := CorrelationIDFromContext(ctx); got != "abc12345" {
		t.Errorf("CorrelationIDFromContext() = %q", got)
	}
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q", got)
	}

	if CorrelationIDFromContext(ContextWithNewCorrelationID(context.Background())) == "" {
		t.Error("ContextWithNewCorrelationID should set an ID")
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))

	l := LoggerFromContext(ctx)
	l.Info().Msg("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("expected stored logger to be used, got: %s", buf.String())
	}
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithCorrelationID(ctx, "reload01")
	ctx = ContextWithRequestID(ctx, "req-42")

	Ctx(ctx).Info().Msg("with ids")

	output := buf.String()
	if !strings.Contains(output, `"correlation_id":"reload01"`) {
		t.Errorf("missing correlation_id: %s", output)
	}
	if !strings.Contains(output, `"request_id":"req-42"`) {
		t.Errorf("missing request_id: %s", output)
	}
}

func TestCtxWith_NoIDs(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))

	l := CtxWith(ctx).Str("customer_id", "C0002").Logger()
	l.Info().Msg("plain")

	output := buf.String()
	if strings.Contains(output, "request_id") {
		t.Errorf("unexpected request_id: %s", output)
	}
	if !strings.Contains(output, `"customer_id":"C0002"`) {
		t.Errorf("missing extra field: %s", output)
	}
}
