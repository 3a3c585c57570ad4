package studentdir

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggerOperations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		log  func(l *Logger)
		want []string
	}{
		{
			name: "save failed",
			log: func(l *Logger) {
				l.LogSave(ctx, Record{ID: 7, Major: "Knitting"}, true, errors.New("boom"))
			},
			want: []string{"level=ERROR", "save failed", "id=7", "major=Knitting", "error=boom"},
		},
		{
			name: "save completed",
			log: func(l *Logger) {
				l.LogSave(ctx, Record{ID: 1234, Name: "Jack", Major: "Knitting"}, true, nil)
			},
			want: []string{"level=DEBUG", "id=1234", "created=true"},
		},
		{
			name: "batch with failures",
			log:  func(l *Logger) { l.LogBatchSave(ctx, 3, 1) },
			want: []string{"level=WARN", "count=3", "failed=1", "success=2"},
		},
		{
			name: "batch",
			log:  func(l *Logger) { l.LogBatchSave(ctx, 2, 0) },
			want: []string{"level=INFO", "count=2"},
		},
		{
			name: "delete",
			log:  func(l *Logger) { l.LogDelete(ctx, 42, nil) },
			want: []string{"delete completed", "id=42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newBufferLogger(&buf))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestLoggerFieldsDoNotLeak(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogDelete(context.Background(), 42, nil)
	buf.Reset()
	l.Info("plain")

	assert.NotContains(t, buf.String(), "id=")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
