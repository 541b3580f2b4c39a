package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	stmts  []string
	failAt int
}

func (r *recordingExecer) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	r.stmts = append(r.stmts, query)
	if r.failAt > 0 && len(r.stmts) == r.failAt {
		return nil, errors.New("boom")
	}
	return nil, nil
}

const sampleSchema = `
-- consumers
CREATE TABLE IF NOT EXISTS consumers (
	id BIGSERIAL PRIMARY KEY
);

CREATE INDEX IF NOT EXISTS consumers_id_idx ON consumers (id);
;
`

func TestSplitStatements(t *testing.T) {
	stmts := SplitStatements(sampleSchema)
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS consumers")
	assert.NotContains(t, stmts[0], "-- consumers")
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS consumers_id_idx ON consumers (id)", stmts[1])
}

func TestApplySchema(t *testing.T) {
	exec := &recordingExecer{}
	require.NoError(t, ApplySchema(context.Background(), exec, sampleSchema))
	assert.Len(t, exec.stmts, 2)

	failing := &recordingExecer{failAt: 2}
	err := ApplySchema(context.Background(), failing, sampleSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement 2")
}

func TestOpenRejectsEmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), "  ", Pool{})
	assert.Error(t, err)
}

func TestPoolWithDefaults(t *testing.T) {
	assert.Equal(t, DefaultPool, Pool{}.withDefaults())

	p := Pool{MaxOpen: 4, MaxIdle: 10, PingTimeout: time.Second}.withDefaults()
	assert.Equal(t, 4, p.MaxOpen)
	assert.Equal(t, 4, p.MaxIdle)
	assert.Equal(t, time.Second, p.PingTimeout)
	assert.Equal(t, DefaultPool.Lifetime, p.Lifetime)
}
