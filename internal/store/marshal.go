package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// marshalInts converts an array to canonical JSON TEXT for storage.
func marshalInts(a []int) (string, error) {
	if a == nil {
		a = []int{}
	}
	data, err := trace.MarshalCanonical(a)
	if err != nil {
		return "", fmt.Errorf("marshal array: %w", err)
	}
	return string(data), nil
}

// unmarshalInts parses a stored array. Empty text decodes to an empty slice.
func unmarshalInts(data string) ([]int, error) {
	out := []int{}
	if data == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil, fmt.Errorf("unmarshal array: %w", err)
	}
	return out, nil
}

// stepColumns maps an event to its nullable columns (i, j, idx, value).
// Fields that do not belong to the event's type are left NULL.
func stepColumns(e trace.Event) (i, j, idx, value sql.NullInt64) {
	switch ev := e.(type) {
	case trace.Compare:
		i, j = nullInt(ev.I), nullInt(ev.J)
	case trace.Swap:
		i, j = nullInt(ev.I), nullInt(ev.J)
	case trace.Set:
		idx, value = nullInt(ev.Index), nullInt(ev.Value)
	}
	return i, j, idx, value
}

func nullInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: true}
}

// stepEvent rebuilds an event from a steps row. A row whose populated
// columns do not match its type is reported as corrupt.
func stepEvent(kind string, i, j, idx, value sql.NullInt64) (trace.Event, error) {
	switch trace.Kind(kind) {
	case trace.KindCompare, trace.KindSwap:
		if !i.Valid || !j.Valid || idx.Valid || value.Valid {
			return nil, fmt.Errorf("%w: %s row has wrong columns", ErrCorruptStep, kind)
		}
		if trace.Kind(kind) == trace.KindCompare {
			return trace.NewCompare(int(i.Int64), int(j.Int64)), nil
		}
		return trace.NewSwap(int(i.Int64), int(j.Int64)), nil
	case trace.KindSet:
		if i.Valid || j.Valid || !idx.Valid || !value.Valid {
			return nil, fmt.Errorf("%w: SET row has wrong columns", ErrCorruptStep)
		}
		return trace.NewSet(int(idx.Int64), int(value.Int64)), nil
	case trace.KindDone:
		if i.Valid || j.Valid || idx.Valid || value.Valid {
			return nil, fmt.Errorf("%w: DONE row has payload", ErrCorruptStep)
		}
		return trace.NewDone(), nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrCorruptStep, kind)
	}
}
