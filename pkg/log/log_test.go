package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	original := logrus.StandardLogger().Out
	SetupTestLogger()
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(original) })

	return buf
}

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_AddsCorrelationID(t *testing.T) {
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("linha salva")

	assert.Contains(t, buf.String(), "correlation_id="+id)
	assert.Contains(t, buf.String(), "linha salva")
}

func TestWithFields_DevelopmentKeepsRelevantFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{"record_id": 9, "irrelevante": "x", "backend_status": 502}).Warn("falha")

	out := buf.String()
	assert.Contains(t, out, "record_id=9")
	assert.Contains(t, out, "backend_status=502")
	assert.NotContains(t, out, "irrelevante")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithField("irrelevante", "x").Info("ok")

	assert.Contains(t, buf.String(), "irrelevante=x")
}
