package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	tlog "go.temporal.io/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsUsableBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("hello")
		Error(nil)
		Default().Debug("noop")
	})
}

func TestWithAttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := SetForTesting(zap.New(core))
	defer restore()

	With(zap.String("run_id", "r1")).Info("wallet done", zap.String("wallet", "0xabc"))
	Error(errors.New("boom"))

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "wallet done", entries[0].Message)
	assert.Equal(t, "r1", entries[0].ContextMap()["run_id"])
	assert.Equal(t, "0xabc", entries[0].ContextMap()["wallet"])
	assert.Equal(t, "boom", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestTemporalAdapterKeyvals(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	adapter := NewTemporalAdapter(zap.New(core))

	adapter.Info("activity started", "wallet", "tz1abc", 42, "ignored", "dangling")

	entries := logs.All()
	assert.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "tz1abc", ctx["wallet"])
	assert.NotContains(t, ctx, "dangling")
	assert.Len(t, ctx, 1)
}

func TestTemporalAdapterDefaultsToPackageLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := SetForTesting(zap.New(core))
	defer restore()

	var adapter tlog.Logger = NewTemporalAdapter(nil)
	adapter.Warn("workflow task retried", "attempt", 2)

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.EqualValues(t, 2, entries[0].ContextMap()["attempt"])
}
