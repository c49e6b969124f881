package cmdutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pangfa-core/gfa"
)

func TestNewLoggerConsole(t *testing.T) {
	var b bytes.Buffer
	log, err := NewLogger(&b, "info", "console")
	require.NoError(t, err)
	log.Debug("hidden")
	log.Warn("dropped traversal", zap.String("name", "p1"))
	require.NoError(t, log.Sync())

	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "WARN\tdropped traversal"), out)
	assert.Contains(t, out, `"name": "p1"`)
}

func TestNewLoggerJSON(t *testing.T) {
	var b bytes.Buffer
	log, err := NewLogger(&b, "debug", "json")
	require.NoError(t, err)
	log.Debug("pass done", zap.Int("records", 3))
	assert.JSONEq(t, `{"level":"debug","msg":"pass done","records":3}`, strings.TrimSpace(b.String()))
}

func TestNewLoggerRejectsBadInput(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud", "console")
	assert.Error(t, err)
	_, err = NewLogger(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestRunStreamCounts(t *testing.T) {
	src := gfa.BytesSource("t", []byte("S\t1\tA\nS\t2\tC\nL\t1\t+\t2\t+\t0M\n"))
	var ids []gfa.NodeID
	n, err := RunStream(context.Background(), src,
		func(r gfa.Record) (bool, gfa.NodeID, error) {
			s, ok := r.(*gfa.Segment)
			if !ok {
				return false, 0, nil
			}
			return true, s.ID, nil
		},
		func(id gfa.NodeID) error { ids = append(ids, id); return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []gfa.NodeID{1, 2}, ids)
}
