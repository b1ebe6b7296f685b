package logger

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The minimal encoder must never silently discard log fields.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2024, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "emit",
		Message:    "Generated",
	}

	testFields := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String("file", "gen/com/example/P.java"), "file=gen/com/example/P.java"},
		{zap.Int("count", 12), "count=12"},
		{zap.Bool("constructor", true), "constructor=true"},
		{zap.Float64("ratio", 0.5), "ratio=0.5"},
		{zap.String("field.with.dots", "x"), "field.with.dots=x"},
		{zap.Error(errors.New("boom")), "error=boom"},
	}

	fields := make([]zapcore.Field, 0, len(testFields))
	for _, tf := range testFields {
		fields = append(fields, tf.field)
	}

	buf, err := encoder.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "13:04:35  emit  Generated  "))
	for _, tf := range testFields {
		assert.Contains(t, out, tf.mustFind)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestMinimalEncoderLevels(t *testing.T) {
	encoder := newMinimalEncoder()

	for _, tc := range []struct {
		level zapcore.Level
		want  string
	}{
		{zapcore.WarnLevel, "WARN"},
		{zapcore.ErrorLevel, "ERROR"},
		{zapcore.DebugLevel, "DEBUG"},
	} {
		buf, err := encoder.EncodeEntry(zapcore.Entry{Level: tc.level, Time: time.Now(), Message: "m"}, nil)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), tc.want)
	}

	buf, err := encoder.EncodeEntry(zapcore.Entry{Level: zapcore.InfoLevel, Time: time.Now(), Message: "m"}, nil)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "INFO")
}
