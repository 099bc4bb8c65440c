package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogPoolWaits(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	logPoolWaits(context.Background(), logger, prev, prev)
	assert.Empty(t, buf.String())

	logPoolWaits(context.Background(), logger, prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 200*time.Millisecond})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "wait_count=2")
	assert.Contains(t, buf.String(), "avg_wait=100ms")
}
