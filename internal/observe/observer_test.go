package observe

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// captureObserver records notifications as strings.
type captureObserver struct {
	calls []string
}

func (c *captureObserver) Compare(i, j int)     { c.calls = append(c.calls, trace.Compare{I: i, J: j}.String()) }
func (c *captureObserver) Swap(i, j int)        { c.calls = append(c.calls, trace.Swap{I: i, J: j}.String()) }
func (c *captureObserver) Set(index, value int) { c.calls = append(c.calls, trace.Set{Index: index, Value: value}.String()) }

func TestNoOp(t *testing.T) {
	var o Observer = NoOp{}
	o.Compare(0, 1)
	o.Swap(0, 1)
	o.Set(0, 1)
}

func TestOrNoOp(t *testing.T) {
	assert.Equal(t, NoOp{}, OrNoOp(nil))

	c := NewCollector()
	assert.Same(t, c, OrNoOp(c))
}

func TestCollector_RecordsInOrder(t *testing.T) {
	c := NewCollector()
	c.Compare(0, 1)
	c.Swap(0, 1)
	c.Set(2, 7)
	require.NoError(t, c.Finalize())

	assert.Equal(t, []trace.Event{
		trace.NewCompare(0, 1),
		trace.NewSwap(0, 1),
		trace.NewSet(2, 7),
		trace.NewDone(),
	}, c.Events().Events())
	assert.True(t, c.Finalized())
	assert.Equal(t, 4, c.Len())
}

func TestCollector_PartialHistory(t *testing.T) {
	c := NewCollector()
	c.Compare(0, 1)

	partial := c.Events()
	c.Swap(0, 1)

	assert.Equal(t, 1, partial.Len(), "view taken earlier must not grow")
	assert.Equal(t, 2, c.Events().Len())
	assert.False(t, c.Finalized())
}

func TestCollector_FinalizeTwice(t *testing.T) {
	c := NewCollector()
	require.NoError(t, c.Finalize())

	err := c.Finalize()
	assert.ErrorIs(t, err, ErrFinalized)
	assert.Equal(t, 1, c.Len(), "second Finalize must not append")
	assert.NoError(t, trace.Validate(c.Events().Events()))
}

func TestCollector_AppendAfterFinalizePanics(t *testing.T) {
	c := NewCollector()
	require.NoError(t, c.Finalize())

	assert.Panics(t, func() { c.Compare(0, 1) })
	assert.Panics(t, func() { c.Swap(0, 1) })
	assert.Panics(t, func() { c.Set(0, 1) })
	assert.Equal(t, 1, c.Len())
}

func TestCollector_EmptyView(t *testing.T) {
	c := NewCollector()
	assert.Equal(t, 0, c.Events().Len())
	assert.Equal(t, []trace.Event{}, c.Events().Events())
}

func TestMulti(t *testing.T) {
	a := &captureObserver{}
	b := &captureObserver{}
	m := NewMulti(a, nil, b)

	m.Compare(1, 2)
	m.Swap(1, 2)
	m.Set(0, 5)

	want := []string{"COMPARE i=1 j=2", "SWAP    i=1 j=2", "SET     index=0 value=5"}
	assert.Equal(t, want, a.calls)
	assert.Equal(t, want, b.calls)
}

func TestSlog_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	o := NewSlog(logger, slog.String("algorithm", "bubble"))
	o.Compare(0, 1)
	o.Set(3, 9)

	out := buf.String()
	assert.Contains(t, out, "msg=COMPARE")
	assert.Contains(t, out, "algorithm=bubble")
	assert.Contains(t, out, "i=0 j=1")
	assert.Contains(t, out, "index=3 value=9")
}

func TestSlog_SilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	o := NewSlog(logger)
	o.Swap(0, 1)

	assert.Zero(t, buf.Len())
}
