package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
}

func TestFromZapFormatsMessages(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core))

	log.Info("room %d assigned to tenant %d", 3, 7)
	log.Error("payment %d failed: %v", 9, "boom")
	log.Debug("dropped below info")

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "room 3 assigned to tenant 7", entries[0].Message)
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
		assert.Equal(t, "payment 9 failed: boom", entries[1].Message)
	}
}

func TestNopLogger(t *testing.T) {
	var l Logger = NewNop()
	assert.NotPanics(t, func() { l.Info("x %d", 1) })
}
